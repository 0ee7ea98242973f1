package pixel

import "github.com/hajimehoshi/ebiten/v2"

// Color is a packed 0xAARRGGBB pixel. It is not premultiplied.
type Color uint32

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint32 { return uint32(c) >> 24 & 0xFF }

// R returns the red channel.
func (c Color) R() uint32 { return uint32(c) >> 16 & 0xFF }

// G returns the green channel.
func (c Color) G() uint32 { return uint32(c) >> 8 & 0xFF }

// B returns the blue channel.
func (c Color) B() uint32 { return uint32(c) & 0xFF }

// Opaque returns c with its alpha channel forced to 255.
func (c Color) Opaque() Color { return c | 0xFF000000 }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Magenta     Color = 0xFFFF00FF
)

// Reserved sentinel colors in font strips. They must not appear as regular
// content in a font image.
const (
	GlyphStart Color = 0xFF0000FF // row 0: first column of a glyph
	GlyphEnd   Color = 0xFFFFFF00 // row 0: column closing a glyph
	GlyphInk   Color = 0xFFFFFFFF // any row: pixel painted with the text tint
)

// Rect is an integer axis-aligned rectangle. The origin is the top-left
// corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Key identifies a keyboard key. Values match Ebitengine's key codes.
type Key = ebiten.Key

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	mouseButtonCount
)

// ebitenButton maps a MouseButton to Ebitengine's button constant.
func (b MouseButton) ebitenButton() ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
