package pixel

import "errors"

// ErrResizeMidFrame is returned by Resize while a frame is being drawn or
// flushed.
var ErrResizeMidFrame = errors.New("pixel: cannot resize buffers mid-frame")

const defaultQueueCap = 256

// requestKind selects which rasterizer replays a deferred draw.
type requestKind uint8

const (
	requestBitmap requestKind = iota // whole-bitmap blit
	requestTile                      // single atlas tile blit
)

// drawRequest is an opaque bitmap or tile draw deferred until Flush.
// depth is the renderer depth at the time of the call, not at flush time.
type drawRequest struct {
	kind   requestKind
	bitmap *Bitmap
	atlas  *TileAtlas
	tileX  int
	tileY  int
	depth  int
	x, y   int
}

// Renderer is the render context: frame buffers, current depth, the batch
// queue of deferred opaque draws, and the active font. It is not safe for
// concurrent use; every call must come from the thread running the frame
// driver.
type Renderer struct {
	fb *FrameBuffers

	depth    int
	queue    []drawRequest
	sortBuf  []drawRequest
	flushing bool // replaying the queue; draws go straight to the compositor
	inFrame  bool // between beginFrame and endFrame

	font *BitmapFont

	debug bool
	stats frameStats
}

// NewRenderer creates a render context for a width×height surface using
// DefaultFont for text.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		fb:      NewFrameBuffers(width, height),
		queue:   make([]drawRequest, 0, defaultQueueCap),
		sortBuf: make([]drawRequest, 0, defaultQueueCap),
		font:    DefaultFont(),
	}
}

// Width returns the surface width in pixels.
func (r *Renderer) Width() int { return r.fb.Width }

// Height returns the surface height in pixels.
func (r *Renderer) Height() int { return r.fb.Height }

// Buffers returns the frame buffers. The returned value MUST NOT be resized
// by the caller.
func (r *Renderer) Buffers() *FrameBuffers { return r.fb }

// Resize reallocates both buffers for a new surface size. Buffers are never
// resized incrementally.
func (r *Renderer) Resize(width, height int) error {
	if r.inFrame || r.flushing {
		return ErrResizeMidFrame
	}
	if width == r.fb.Width && height == r.fb.Height {
		return nil
	}
	r.fb = NewFrameBuffers(width, height)
	r.queue = r.queue[:0]
	return nil
}

// Clear zeroes the color and depth buffers.
func (r *Renderer) Clear() {
	r.fb.Clear()
}

// SetDepth sets the depth used by subsequent draw calls.
func (r *Renderer) SetDepth(d int) { r.depth = d }

// Depth returns the current depth.
func (r *Renderer) Depth() int { return r.depth }

// SetFont sets the font used by DrawText. A nil font restores DefaultFont.
func (r *Renderer) SetFont(f *BitmapFont) {
	if f == nil {
		f = DefaultFont()
	}
	r.font = f
}

// Font returns the active font.
func (r *Renderer) Font() *BitmapFont { return r.font }

// Pending returns the number of deferred draws waiting for Flush.
func (r *Renderer) Pending() int { return len(r.queue) }

// SetDebugMode enables per-frame stats logging at debug level.
func (r *Renderer) SetDebugMode(enabled bool) { r.debug = enabled }

// beginFrame resets the context for a new tick: buffers cleared, queue
// emptied, stats zeroed.
func (r *Renderer) beginFrame() {
	r.inFrame = true
	r.fb.Clear()
	r.queue = r.queue[:0]
	r.stats = frameStats{}
}

// endFrame closes the tick opened by beginFrame.
func (r *Renderer) endFrame() {
	r.inFrame = false
	if r.debug {
		r.debugLog()
	}
}

// --- Compositor ---

// SetPixel composites c at (x, y). Off-surface and fully transparent writes
// are dropped. A slot already stamped with a greater depth is never
// overwritten; otherwise the slot takes the current depth and c is blended
// over the existing color.
func (r *Renderer) SetPixel(x, y int, c Color) {
	alpha := c.A()
	if alpha == 0 {
		return
	}
	i := r.fb.index(x, y)
	if i < 0 {
		return
	}

	if r.fb.Depth[i] > r.depth {
		return
	}
	r.fb.Depth[i] = r.depth

	if alpha == 0xFF {
		r.fb.Color[i] = c
		return
	}

	dst := r.fb.Color[i]
	r.fb.Color[i] = Color(0xFF000000 |
		blendChannel(dst.R(), c.R(), alpha)<<16 |
		blendChannel(dst.G(), c.G(), alpha)<<8 |
		blendChannel(dst.B(), c.B(), alpha))
}

// blendChannel moves dst toward src by alpha/255, truncating toward dst.
func blendChannel(dst, src, alpha uint32) uint32 {
	if src >= dst {
		return dst + (src-dst)*alpha/0xFF
	}
	return dst - (dst-src)*alpha/0xFF
}

// --- Draw dispatch ---

// DrawBitmap draws b with its top-left corner at (x, y). Opaque bitmaps are
// deferred to Flush; bitmaps with alpha are composited immediately.
func (r *Renderer) DrawBitmap(b *Bitmap, x, y int) {
	if b == nil {
		return
	}
	r.submitDraw(drawRequest{kind: requestBitmap, bitmap: b, depth: r.depth, x: x, y: y}, !b.HasAlpha)
}

// DrawTile draws tile (tileX, tileY) of a with its top-left corner at
// (x, y). Routing follows DrawBitmap, using the atlas's HasAlpha flag.
func (r *Renderer) DrawTile(a *TileAtlas, x, y, tileX, tileY int) {
	if a == nil || a.Bitmap == nil {
		return
	}
	r.submitDraw(drawRequest{
		kind:  requestTile,
		atlas: a,
		tileX: tileX,
		tileY: tileY,
		depth: r.depth,
		x:     x,
		y:     y,
	}, !a.HasAlpha)
}

// submitDraw either queues req for the next Flush or rasterizes it now.
// Only opaque sources outside a flush are queued.
func (r *Renderer) submitDraw(req drawRequest, opaque bool) {
	if opaque && !r.flushing {
		r.queue = append(r.queue, req)
		r.stats.queued++
		return
	}
	if err := r.rasterize(&req); err != nil {
		r.stats.skipped++
		Logger().Warn("pixel: dropped draw", "error", err)
	}
}

// --- Merge sort ---

// requestLessOrEqual reports whether a sorts at or before b. Using <= keeps
// equal-depth requests in insertion order.
func requestLessOrEqual(a, b *drawRequest) bool {
	return a.depth <= b.depth
}

// sortQueue stable-sorts r.queue by depth using r.sortBuf as scratch space.
// Bottom-up merge sort: no allocations once the scratch buffer reaches its
// high-water mark.
func (r *Renderer) sortQueue() {
	n := len(r.queue)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]drawRequest, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.queue
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.queue, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawRequest, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if requestLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
