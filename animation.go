package pixel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TickDelta is TickLength in seconds, the dt to pass to tween updates from
// Game.Tick.
const TickDelta = float32(1.0 / 60.0)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one with
// TweenValue or TweenPoint and call Update(dt) once per tick; the group
// writes the eased values into the fields it was given.
//
// There is no global animation manager; callers drive their own groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool

	begin, end [4]float32
	duration   float32
	fn         ease.TweenFunc
}

// add registers field to animate from its current value to `to`.
func (g *TweenGroup) add(field *float64, to float64) {
	i := g.count
	g.begin[i], g.end[i] = float32(*field), float32(to)
	g.tweens[i] = gween.New(g.begin[i], g.end[i], g.duration, g.fn)
	g.fields[i] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start value.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i] = gween.New(g.begin[i], g.end[i], g.duration, g.fn)
		*g.fields[i] = float64(g.begin[i])
	}
	g.Done = false
}

// TweenValue animates *v from its current value to `to`.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{duration: duration, fn: fn}
	g.add(v, to)
	return g
}

// TweenPoint animates *x and *y from their current values to (toX, toY).
func TweenPoint(x, y *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{duration: duration, fn: fn}
	g.add(x, toX)
	g.add(y, toY)
	return g
}

// ColorTween eases all four channels of a Color, including alpha. Use it to
// fade translucent overlays in and out.
type ColorTween struct {
	group    TweenGroup
	channels [4]float64 // a, r, g, b
}

// NewColorTween returns a tween from `from` to `to` over duration seconds.
func NewColorTween(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	t := &ColorTween{
		channels: [4]float64{float64(from.A()), float64(from.R()), float64(from.G()), float64(from.B())},
	}
	ends := [4]uint32{to.A(), to.R(), to.G(), to.B()}
	t.group.duration, t.group.fn = duration, fn
	for i := range t.channels {
		t.group.add(&t.channels[i], float64(ends[i]))
	}
	return t
}

// Update advances the tween by dt seconds and returns the current color.
func (t *ColorTween) Update(dt float32) Color {
	t.group.Update(dt)
	return t.Color()
}

// Color returns the current color.
func (t *ColorTween) Color() Color {
	return ARGB(channel(t.channels[0]), channel(t.channels[1]),
		channel(t.channels[2]), channel(t.channels[3]))
}

// Done reports whether the tween reached its end color.
func (t *ColorTween) Done() bool { return t.group.Done }

// Reset rewinds the tween to its start color.
func (t *ColorTween) Reset() { t.group.Reset() }

// channel rounds and clamps an eased channel value to a byte. Some easing
// functions overshoot.
func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
