package pixel

import "image"

// fillRGBA writes color as opaque RGBA bytes into pix, which must hold at
// least 4*len(color) bytes. Alpha is dropped: the presented surface is
// always opaque.
func fillRGBA(pix []byte, color []Color) {
	for i, c := range color {
		p := pix[i*4 : i*4+4 : i*4+4]
		p[0] = uint8(c >> 16)
		p[1] = uint8(c >> 8)
		p[2] = uint8(c)
		p[3] = 0xFF
	}
}

// ImagePresenter keeps the last presented frame in an *image.RGBA. It is the
// headless presenter used by tests and the demo's -headless mode.
type ImagePresenter struct {
	img    *image.RGBA
	frames int
}

// NewImagePresenter returns an empty presenter.
func NewImagePresenter() *ImagePresenter {
	return &ImagePresenter{}
}

// Present copies the color buffer, reallocating when the size changes.
func (p *ImagePresenter) Present(color []Color, width, height int) error {
	if p.img == nil || p.img.Rect.Dx() != width || p.img.Rect.Dy() != height {
		p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	fillRGBA(p.img.Pix, color)
	p.frames++
	return nil
}

// Image returns the last presented frame, or nil before the first Present.
func (p *ImagePresenter) Image() *image.RGBA { return p.img }

// Frames returns how many frames have been presented.
func (p *ImagePresenter) Frames() int { return p.frames }
