package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrBitmapSize is returned when a bitmap's pixel slice does not match its
// dimensions.
var ErrBitmapSize = errors.New("pixel: bitmap pixel count does not match dimensions")

// Bitmap is a rectangular grid of ARGB pixels stored row-major.
//
// Pixels are treated as immutable once the bitmap is built. HasAlpha routes
// the bitmap through immediate compositing; callers may set it on an opaque
// bitmap to force that path.
type Bitmap struct {
	Width    int
	Height   int
	Pixels   []Color
	HasAlpha bool
}

// NewBitmap wraps pixels as a width×height bitmap. HasAlpha is set when any
// pixel is not fully opaque.
func NewBitmap(width, height int, pixels []Color) (*Bitmap, error) {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrBitmapSize, width, height, len(pixels))
	}
	b := &Bitmap{Width: width, Height: height, Pixels: pixels}
	b.HasAlpha = scanAlpha(pixels)
	return b, nil
}

// NewFilledBitmap returns a width×height bitmap where every pixel is c.
func NewFilledBitmap(width, height int, c Color) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pixels := make([]Color, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return &Bitmap{Width: width, Height: height, Pixels: pixels, HasAlpha: c.A() != 0xFF && len(pixels) > 0}
}

// At returns the pixel at (x, y), or Transparent when out of range.
func (b *Bitmap) At(x, y int) Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Transparent
	}
	return b.Pixels[x+y*b.Width]
}

// valid reports whether the bitmap still satisfies its size invariant.
func (b *Bitmap) valid() bool {
	return b != nil && b.Width >= 0 && b.Height >= 0 && len(b.Pixels) == b.Width*b.Height
}

func scanAlpha(pixels []Color) bool {
	for _, p := range pixels {
		if p.A() != 0xFF {
			return true
		}
	}
	return false
}

// BitmapFromImage converts any image into a Bitmap with straight-alpha
// ARGB pixels.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]Color, w*h)

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := n.Pix[y*n.Stride : y*n.Stride+w*4]
			for x := 0; x < w; x++ {
				i := x * 4
				pixels[x+y*w] = ARGB(row[i+3], row[i], row[i+1], row[i+2])
			}
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				pixels[x+y*w] = ARGB(c.A, c.R, c.G, c.B)
			}
		}
	}

	return &Bitmap{Width: w, Height: h, Pixels: pixels, HasAlpha: scanAlpha(pixels)}
}

// LoadBitmap decodes an image (PNG, JPEG, GIF, BMP, WebP or TGA) into a
// Bitmap.
func LoadBitmap(r io.Reader) (*Bitmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixel: decode bitmap: %w", err)
	}
	return BitmapFromImage(img), nil
}

// LoadBitmapFile opens name in fsys and decodes it with LoadBitmap.
func LoadBitmapFile(fsys fs.FS, name string) (*Bitmap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("pixel: open %s: %w", name, err)
	}
	defer f.Close()

	b, err := LoadBitmap(f)
	if err != nil {
		return nil, fmt.Errorf("pixel: load %s: %w", name, err)
	}
	return b, nil
}
