package pixel

import (
	"fmt"
	"math"
)

// StatsDepth is the depth the stats overlay draws at, above any game depth.
const StatsDepth = math.MaxInt32

const statsPadding = 2

// statsBackground is the translucent panel behind the overlay text.
const statsBackground Color = 0x80000000

// DrawStats draws an FPS/TPS readout with its top-left corner at (x, y)
// using the active font. fps is usually ebiten.ActualFPS() and tps
// Driver.ActualTPS(). The caller's depth is restored afterwards.
func DrawStats(r *Renderer, fps, tps float64, x, y int) {
	lines := [2]string{
		fmt.Sprintf("FPS %5.1f", fps),
		fmt.Sprintf("TPS %5.1f", tps),
	}

	f := r.Font()
	w := 0
	for _, l := range lines {
		lw, _ := f.MeasureText(l)
		w = max(w, lw)
	}
	lineH := f.Height()

	saved := r.Depth()
	r.SetDepth(StatsDepth)
	defer r.SetDepth(saved)

	r.DrawRect(x, y, w+2*statsPadding, len(lines)*lineH+statsPadding, statsBackground)
	for i, l := range lines {
		r.DrawText(l, x+statsPadding, y+i*lineH, White)
	}
}
