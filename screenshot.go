package pixel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Screenshot formats accepted by Driver.ScreenshotFormat.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Screenshot queues a labeled capture of the color buffer. It is taken right
// after the current (or next) tick is presented and written to
// ScreenshotDir with a timestamped filename.
func (d *Driver) Screenshot(label string) {
	d.screenshots = append(d.screenshots, label)
}

// flushScreenshots writes one file per queued label. Failures are logged
// and never stop the driver.
func (d *Driver) flushScreenshots() {
	if len(d.screenshots) == 0 {
		return
	}
	defer func() { d.screenshots = d.screenshots[:0] }()

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("pixel: screenshot", "dir", d.ScreenshotDir, "error", err)
		return
	}

	fb := d.renderer.Buffers()
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fillRGBA(img.Pix, fb.Color)

	stamp := time.Now().Format("20060102_150405")
	ext := d.ScreenshotFormat
	if ext != FormatWebP {
		ext = FormatPNG
	}

	for _, label := range d.screenshots {
		path := filepath.Join(d.ScreenshotDir,
			fmt.Sprintf("%s_%06d_%s.%s", stamp, d.ticks, sanitizeLabel(label), ext))
		if err := writeImage(path, img, ext); err != nil {
			Logger().Warn("pixel: screenshot", "error", err)
			continue
		}
		Logger().Info("pixel: screenshot written", "path", path)
	}
}

// writeImage encodes img to path as PNG or WebP.
func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if format == FormatWebP {
		err = nativewebp.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
