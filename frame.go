package pixel

// FrameBuffers is the color/depth buffer pair the compositor writes into.
// Both slices hold Width*Height entries in row-major order.
type FrameBuffers struct {
	Width  int
	Height int
	Color  []Color // presented to the host surface
	Depth  []int   // last depth written per pixel
}

// NewFrameBuffers allocates zeroed buffers for a width×height surface.
// Negative dimensions are treated as zero.
func NewFrameBuffers(width, height int) *FrameBuffers {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height
	return &FrameBuffers{
		Width:  width,
		Height: height,
		Color:  make([]Color, n),
		Depth:  make([]int, n),
	}
}

// Clear zeroes every color and depth slot.
func (fb *FrameBuffers) Clear() {
	clear(fb.Color)
	clear(fb.Depth)
}

// index returns the slot for (x, y), or -1 when the pixel is off-surface.
func (fb *FrameBuffers) index(x, y int) int {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return -1
	}
	return x + y*fb.Width
}

// At returns the color at (x, y), or Transparent when off-surface.
func (fb *FrameBuffers) At(x, y int) Color {
	i := fb.index(x, y)
	if i < 0 {
		return Transparent
	}
	return fb.Color[i]
}

// DepthAt returns the depth stamped at (x, y), or 0 when off-surface.
func (fb *FrameBuffers) DepthAt(x, y int) int {
	i := fb.index(x, y)
	if i < 0 {
		return 0
	}
	return fb.Depth[i]
}
