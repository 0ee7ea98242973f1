package pixel

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedFont is returned when a font strip's start/end sentinels do
// not pair up.
var ErrMalformedFont = errors.New("pixel: malformed font strip")

const (
	glyphCount     = 256 // table slots
	firstCodePoint = 32  // code point of slot 0 (space)
)

// BitmapFont renders text from a single-row glyph strip. Row 0 of the strip
// marks each glyph with a GlyphStart pixel at its first column and a
// GlyphEnd pixel closing it; glyphs are stored in code point order starting
// at space (32). Glyph pixels equal to GlyphInk are painted with the text
// color.
type BitmapFont struct {
	bitmap *Bitmap

	offsets [glyphCount]int
	widths  [glyphCount]int
	mapped  [glyphCount]bool
	count   int
}

// NewBitmapFont scans row 0 of b and builds the glyph table. The strip must
// hold at least one glyph, every start must be closed by an end before the
// next start, and at most 256 glyphs are accepted.
func NewBitmapFont(b *Bitmap) (*BitmapFont, error) {
	if !b.valid() || b.Width == 0 || b.Height == 0 {
		return nil, fmt.Errorf("%w: empty or inconsistent bitmap", ErrMalformedFont)
	}

	f := &BitmapFont{bitmap: b}
	open := false

	for x := 0; x < b.Width; x++ {
		switch b.Pixels[x] {
		case GlyphStart:
			if open {
				return nil, fmt.Errorf("%w: column %d starts glyph %d before glyph %d ended",
					ErrMalformedFont, x, f.count+1, f.count)
			}
			if f.count == glyphCount {
				return nil, fmt.Errorf("%w: more than %d glyphs", ErrMalformedFont, glyphCount)
			}
			f.offsets[f.count] = x
			open = true
		case GlyphEnd:
			if !open {
				return nil, fmt.Errorf("%w: column %d ends a glyph that was never started",
					ErrMalformedFont, x)
			}
			f.widths[f.count] = x - f.offsets[f.count]
			f.mapped[f.count] = true
			f.count++
			open = false
		}
	}

	if open {
		return nil, fmt.Errorf("%w: glyph %d starting at column %d is never closed",
			ErrMalformedFont, f.count, f.offsets[f.count])
	}
	if f.count == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrMalformedFont)
	}
	return f, nil
}

// LoadBitmapFont decodes a font strip image and builds its glyph table.
func LoadBitmapFont(r io.Reader) (*BitmapFont, error) {
	b, err := LoadBitmap(r)
	if err != nil {
		return nil, err
	}
	return NewBitmapFont(b)
}

// LoadBitmapFontFile opens name in fsys and decodes it with LoadBitmapFont.
func LoadBitmapFontFile(fsys fs.FS, name string) (*BitmapFont, error) {
	b, err := LoadBitmapFile(fsys, name)
	if err != nil {
		return nil, err
	}
	f, err := NewBitmapFont(b)
	if err != nil {
		return nil, fmt.Errorf("pixel: font %s: %w", name, err)
	}
	return f, nil
}

// Bitmap returns the glyph strip.
func (f *BitmapFont) Bitmap() *Bitmap { return f.bitmap }

// Height returns the glyph window height, which is the strip height.
func (f *BitmapFont) Height() int { return f.bitmap.Height }

// GlyphCount returns the number of glyphs parsed from the strip.
func (f *BitmapFont) GlyphCount() int { return f.count }

// Glyph returns the strip column and width of r. ok is false when r has no
// slot in the table or the strip did not define it.
func (f *BitmapFont) Glyph(r rune) (offset, width int, ok bool) {
	i := int(r) - firstCodePoint
	if i < 0 || i >= glyphCount || !f.mapped[i] {
		return 0, 0, false
	}
	return f.offsets[i], f.widths[i], true
}

// MeasureText returns the pixel size DrawText covers for s, after the same
// NFC normalization. Unmapped characters contribute nothing.
func (f *BitmapFont) MeasureText(s string) (width, height int) {
	for _, r := range norm.NFC.String(s) {
		if _, w, ok := f.Glyph(r); ok {
			width += w
		}
	}
	return width, f.bitmap.Height
}

// DrawText draws s with its top-left corner at (x, y) using the active font.
// Every GlyphInk pixel of each glyph is composited as c. There is no kerning
// or wrapping; characters without a glyph are skipped without advancing.
// s is NFC-normalized before glyph lookup, so composed forms are looked up
// rather than the exact code points passed (U+212B draws as U+00C5).
// Text is always composited immediately.
func (r *Renderer) DrawText(s string, x, y int, c Color) {
	f := r.font
	if f == nil || s == "" {
		return
	}

	strip := f.bitmap
	cursor := 0

	for _, cp := range norm.NFC.String(s) {
		offset, w, ok := f.Glyph(cp)
		if !ok {
			r.stats.unmappedGlyphs++
			continue
		}
		for gy := 0; gy < strip.Height; gy++ {
			row := gy * strip.Width
			for gx := 0; gx < w; gx++ {
				if strip.Pixels[offset+gx+row] == GlyphInk {
					r.SetPixel(x+cursor+gx, y+gy, c)
				}
			}
		}
		cursor += w
	}
}
