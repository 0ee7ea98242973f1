package pixel

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TickLength is the fixed simulation step: 60 ticks per second.
const TickLength = time.Second / 60

// ErrStop is returned by Game.Tick to end the run loop cleanly.
var ErrStop = errors.New("pixel: stop")

// Game is the caller logic driven once per tick. Tick issues draw calls on r
// and reads in; it must not retain either past the call.
type Game interface {
	Tick(r *Renderer, in Input) error
}

// GameFunc adapts a plain function to the Game interface.
type GameFunc func(r *Renderer, in Input) error

// Tick calls f(r, in).
func (f GameFunc) Tick(r *Renderer, in Input) error { return f(r, in) }

// Presenter receives the finished color buffer once per tick. Present may
// block (for example on vsync). The slice is only valid during the call.
type Presenter interface {
	Present(color []Color, width, height int) error
}

type driverState uint8

const (
	stateAccumulating driverState = iota // waiting for a full tick of time
	stateTicking                         // running beginFrame..endFrame
)

// Driver is the fixed-timestep frame driver. Each tick runs, in order:
// buffer clear, Game.Tick, Flush, Present, screenshot capture, Input.Poll.
type Driver struct {
	renderer  *Renderer
	game      Game
	input     Input
	presenter Presenter

	state       driverState
	accumulator time.Duration
	ticks       uint64

	// ScreenshotDir is where Screenshot writes its files.
	ScreenshotDir string
	// ScreenshotFormat is "png" or "webp".
	ScreenshotFormat string
	screenshots      []string

	tpsElapsed time.Duration
	tpsTicks   int
	tps        float64
}

// NewDriver wires a renderer, game, input source and presenter together.
// A nil input is replaced by an input that never reports any activity; a
// nil presenter discards frames.
func NewDriver(r *Renderer, g Game, in Input, p Presenter) *Driver {
	if in == nil {
		in = &ScriptedInput{done: true}
	}
	if p == nil {
		p = discardPresenter{}
	}
	d := &Driver{
		renderer:         r,
		game:             g,
		input:            in,
		presenter:        p,
		ScreenshotDir:    "screenshots",
		ScreenshotFormat: FormatPNG,
	}
	if si, ok := in.(*ScriptedInput); ok && si.screenshot == nil {
		si.screenshot = d.Screenshot
	}
	return d
}

// Renderer returns the render context the driver ticks.
func (d *Driver) Renderer() *Renderer { return d.renderer }

// Input returns the input source polled after every tick.
func (d *Driver) Input() Input { return d.input }

// Ticks returns the number of ticks run so far.
func (d *Driver) Ticks() uint64 { return d.ticks }

// ActualTPS returns the tick rate measured over the last full second of
// advanced time.
func (d *Driver) ActualTPS() float64 { return d.tps }

// Advance adds elapsed wall time to the accumulator and runs one tick for
// every full TickLength it holds. Several ticks may run in one call. The
// first error from a tick stops the loop and is returned; ErrStop is
// returned unwrapped.
func (d *Driver) Advance(elapsed time.Duration) error {
	if elapsed < 0 {
		elapsed = 0
	}
	d.accumulator += elapsed
	d.tpsElapsed += elapsed

	for d.accumulator >= TickLength {
		d.accumulator -= TickLength
		d.state = stateTicking
		err := d.tick()
		d.state = stateAccumulating
		if err != nil {
			return err
		}
	}

	if d.tpsElapsed >= time.Second {
		d.tps = float64(d.tpsTicks) / d.tpsElapsed.Seconds()
		d.tpsElapsed = 0
		d.tpsTicks = 0
	}
	return nil
}

func (d *Driver) tick() error {
	r := d.renderer
	r.beginFrame()
	defer r.endFrame()

	d.ticks++
	d.tpsTicks++

	if err := d.game.Tick(r, d.input); err != nil {
		if errors.Is(err, ErrStop) {
			return ErrStop
		}
		return fmt.Errorf("pixel: tick %d: %w", d.ticks, err)
	}

	// Skipped entries are logged by Flush; the frame is still presented.
	_ = r.Flush()

	fb := r.Buffers()
	if err := d.presenter.Present(fb.Color, fb.Width, fb.Height); err != nil {
		return fmt.Errorf("pixel: present tick %d: %w", d.ticks, err)
	}
	d.flushScreenshots()

	d.input.Poll()
	return nil
}

// Run drives Advance from the now clock until ctx is cancelled or the game
// returns ErrStop, sleeping between ticks. A nil now uses time.Now. Run
// returns nil on ErrStop and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}
	last := now()
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t := now()
		elapsed := t.Sub(last)
		last = t

		if err := d.Advance(elapsed); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		wait := TickLength - d.accumulator
		if wait <= 0 {
			continue
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

type discardPresenter struct{}

func (discardPresenter) Present([]Color, int, int) error { return nil }
