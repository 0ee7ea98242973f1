package pixel

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRequest is reported for a deferred draw whose source no longer
// satisfies its size invariants.
var ErrInvalidRequest = errors.New("pixel: invalid draw request")

// Flush sorts the deferred draws by depth (ties keep call order) and
// replays each one through the compositor at its recorded depth. Draw calls
// made while flushing are composited immediately, never queued.
//
// A request that cannot be replayed is skipped; the rest still draw and the
// returned error joins every skip. The queue is always empty afterwards and
// the caller's depth is restored.
func (r *Renderer) Flush() error {
	if r.flushing {
		return nil
	}

	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	r.sortQueue()

	saved := r.depth
	r.flushing = true
	defer func() {
		clear(r.queue)
		r.queue = r.queue[:0]
		clear(r.sortBuf)
		r.flushing = false
		r.depth = saved
	}()

	var errs []error
	for i := range r.queue {
		req := &r.queue[i]
		r.depth = req.depth
		if err := r.rasterize(req); err != nil {
			r.stats.skipped++
			errs = append(errs, fmt.Errorf("pixel: batch entry %d (depth %d): %w", i, req.depth, err))
		}
	}

	if r.debug {
		r.stats.flushed += len(r.queue)
		r.stats.depthRuns += countDepthRuns(r.queue)
		r.stats.flushTime += time.Since(t0)
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		Logger().Warn("pixel: skipped batch entries", "count", len(errs), "error", err)
		return err
	}
	return nil
}

// rasterize draws req immediately at the current depth.
func (r *Renderer) rasterize(req *drawRequest) error {
	switch req.kind {
	case requestBitmap:
		if !req.bitmap.valid() {
			return fmt.Errorf("%w: bitmap pixel count does not match its size", ErrInvalidRequest)
		}
		r.blitBitmap(req.bitmap, req.x, req.y)
	case requestTile:
		if !req.atlas.valid() {
			return fmt.Errorf("%w: atlas no longer splits into whole tiles", ErrInvalidRequest)
		}
		tx, ty := req.atlas.clampTile(req.tileX, req.tileY)
		r.blitTile(req.atlas, req.x, req.y, tx, ty)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidRequest, req.kind)
	}
	return nil
}
