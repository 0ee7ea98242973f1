package pixel

// clipSpan is the part of a w×h rectangle placed at (x, y) that lands on
// the surface, in rectangle-local coordinates: [sx, ex) × [sy, ey).
type clipSpan struct {
	sx, sy int
	ex, ey int
}

// clip computes the visible span of a w×h rectangle at (x, y). ok is false
// when nothing is visible, including for zero or negative sizes.
func (r *Renderer) clip(x, y, w, h int) (span clipSpan, ok bool) {
	if w <= 0 || h <= 0 {
		return clipSpan{}, false
	}
	if x+w <= 0 || y+h <= 0 || x >= r.fb.Width || y >= r.fb.Height {
		return clipSpan{}, false
	}
	span.sx = max(0, -x)
	span.sy = max(0, -y)
	span.ex = min(w, r.fb.Width-x)
	span.ey = min(h, r.fb.Height-y)
	return span, true
}

// blitBitmap composites every visible pixel of b at (x, y).
func (r *Renderer) blitBitmap(b *Bitmap, x, y int) {
	span, ok := r.clip(x, y, b.Width, b.Height)
	if !ok {
		return
	}
	for sy := span.sy; sy < span.ey; sy++ {
		row := sy * b.Width
		for sx := span.sx; sx < span.ex; sx++ {
			r.SetPixel(sx+x, sy+y, b.Pixels[sx+row])
		}
	}
}

// blitTile composites the visible part of tile (tx, ty) at (x, y). Clip
// coordinates are tile-local and offset into the atlas row stride.
func (r *Renderer) blitTile(a *TileAtlas, x, y, tx, ty int) {
	span, ok := r.clip(x, y, a.TileWidth, a.TileHeight)
	if !ok {
		return
	}
	ox := tx * a.TileWidth
	oy := ty * a.TileHeight
	for sy := span.sy; sy < span.ey; sy++ {
		row := (sy + oy) * a.Width
		for sx := span.sx; sx < span.ex; sx++ {
			r.SetPixel(sx+x, sy+y, a.Pixels[(sx+ox)+row])
		}
	}
}

// DrawRect fills the w×h rectangle at (x, y) with fill. It is always
// composited immediately.
func (r *Renderer) DrawRect(x, y, w, h int, fill Color) {
	span, ok := r.clip(x, y, w, h)
	if !ok {
		return
	}
	for sy := span.sy; sy < span.ey; sy++ {
		for sx := span.sx; sx < span.ex; sx++ {
			r.SetPixel(sx+x, sy+y, fill)
		}
	}
}

// DrawRectStroke fills the inside of the w×h rectangle at (x, y) with fill
// and outlines it with stroke. The outline runs along rows y and y+h and
// columns x and x+w, so it spans w+1 by h+1 pixels and is still drawn when
// the rectangle itself ends exactly on the surface edge.
func (r *Renderer) DrawRectStroke(x, y, w, h int, fill, stroke Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if x+w < 0 || y+h < 0 || x >= r.fb.Width || y >= r.fb.Height {
		return
	}

	// Visible part of the outline extent, inclusive.
	sx, sy := max(0, -x), max(0, -y)
	ex, ey := min(w, r.fb.Width-1-x), min(h, r.fb.Height-1-y)

	for iy := max(sy, 1); iy <= min(ey, h-1); iy++ {
		for ix := max(sx, 1); ix <= min(ex, w-1); ix++ {
			r.SetPixel(ix+x, iy+y, fill)
		}
	}

	for ix := sx; ix <= ex; ix++ {
		r.SetPixel(ix+x, y, stroke)
		r.SetPixel(ix+x, y+h, stroke)
	}
	for iy := sy; iy <= ey; iy++ {
		r.SetPixel(x, iy+y, stroke)
		r.SetPixel(x+w, iy+y, stroke)
	}
}
