package pixel

import "time"

// frameStats holds per-frame draw counters. flushTime and flushed are only
// measured in debug mode.
type frameStats struct {
	queued         int
	flushed        int
	depthRuns      int
	skipped        int
	unmappedGlyphs int
	flushTime      time.Duration
}

// debugLog reports the current frame's stats at debug level.
func (r *Renderer) debugLog() {
	s := r.stats
	Logger().Debug("pixel: frame",
		"queued", s.queued,
		"flushed", s.flushed,
		"depth_runs", s.depthRuns,
		"skipped", s.skipped,
		"unmapped_glyphs", s.unmappedGlyphs,
		"flush", s.flushTime,
	)
}

// countDepthRuns counts contiguous groups of requests sharing a depth in a
// sorted queue.
func countDepthRuns(queue []drawRequest) int {
	if len(queue) == 0 {
		return 0
	}
	count := 1
	prev := queue[0].depth
	for i := 1; i < len(queue); i++ {
		if queue[i].depth != prev {
			count++
			prev = queue[i].depth
		}
	}
	return count
}
