package pixel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// recorder logs the order of driver callbacks.
type recorder struct {
	events []string
}

type recordingInput struct {
	ScriptedInput
	rec *recorder
}

func (in *recordingInput) Poll() {
	in.rec.events = append(in.rec.events, "poll")
	in.ScriptedInput.Poll()
}

type recordingPresenter struct {
	rec  *recorder
	last []Color
}

func (p *recordingPresenter) Present(color []Color, _, _ int) error {
	p.rec.events = append(p.rec.events, "present")
	p.last = append(p.last[:0], color...)
	return nil
}

func newRecordingDriver(game GameFunc) (*Driver, *recorder, *recordingPresenter) {
	rec := &recorder{}
	p := &recordingPresenter{rec: rec}
	in := &recordingInput{ScriptedInput: ScriptedInput{done: true}, rec: rec}
	d := NewDriver(NewRenderer(4, 4), GameFunc(func(r *Renderer, in Input) error {
		rec.events = append(rec.events, "tick")
		return game(r, in)
	}), in, p)
	return d, rec, p
}

func TestDriverAccumulator(t *testing.T) {
	d, _, _ := newRecordingDriver(func(*Renderer, Input) error { return nil })

	tests := []struct {
		elapsed time.Duration
		total   uint64
	}{
		{TickLength / 2, 0},
		{TickLength / 2, 1},
		{0, 1},
		{3*TickLength + time.Millisecond, 4},
		{TickLength - time.Millisecond, 5},
		{-time.Second, 5},
	}
	for i, tt := range tests {
		if err := d.Advance(tt.elapsed); err != nil {
			t.Fatalf("step %d: Advance: %v", i, err)
		}
		if d.Ticks() != tt.total {
			t.Errorf("step %d: ticks = %d, want %d", i, d.Ticks(), tt.total)
		}
	}
	if d.state != stateAccumulating {
		t.Errorf("state = %d after Advance, want stateAccumulating", d.state)
	}
}

func TestDriverTickOrder(t *testing.T) {
	d, rec, _ := newRecordingDriver(func(*Renderer, Input) error { return nil })
	if err := d.Advance(2 * TickLength); err != nil {
		t.Fatal(err)
	}
	want := []string{"tick", "present", "poll", "tick", "present", "poll"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestDriverClearsAndFlushesEachTick(t *testing.T) {
	tick := 0
	var dirty bool
	d, _, p := newRecordingDriver(func(r *Renderer, _ Input) error {
		tick++
		for _, c := range r.Buffers().Color {
			if c != Transparent {
				dirty = true
			}
		}
		if tick == 1 {
			r.DrawBitmap(NewFilledBitmap(1, 1, Red), 0, 0)
		}
		return nil
	})

	if err := d.Advance(TickLength); err != nil {
		t.Fatal(err)
	}
	if p.last[0] != Red {
		t.Errorf("presented (0, 0) = %#08x, want queued red flushed before present", p.last[0])
	}
	if err := d.Advance(TickLength); err != nil {
		t.Fatal(err)
	}
	if dirty {
		t.Error("buffers were not cleared before Tick")
	}
	if p.last[0] != Transparent {
		t.Errorf("second frame (0, 0) = %#08x, want cleared", p.last[0])
	}
}

func TestDriverStop(t *testing.T) {
	d, _, _ := newRecordingDriver(func(*Renderer, Input) error { return ErrStop })
	if err := d.Advance(5 * TickLength); err != ErrStop {
		t.Errorf("Advance = %v, want ErrStop", err)
	}
	if d.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", d.Ticks())
	}
	if d.Renderer().inFrame {
		t.Error("frame left open after stop")
	}
}

func TestDriverGameError(t *testing.T) {
	boom := errors.New("boom")
	d, rec, _ := newRecordingDriver(func(*Renderer, Input) error { return boom })
	err := d.Advance(TickLength)
	if !errors.Is(err, boom) {
		t.Fatalf("Advance = %v, want wrapped boom", err)
	}
	if diff := cmp.Diff([]string{"tick"}, rec.events); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

type failingPresenter struct{}

func (failingPresenter) Present([]Color, int, int) error { return errors.New("surface lost") }

func TestDriverPresentError(t *testing.T) {
	d := NewDriver(NewRenderer(2, 2), GameFunc(func(*Renderer, Input) error { return nil }), nil, failingPresenter{})
	if err := d.Advance(TickLength); err == nil {
		t.Error("expected present error")
	}
}

func TestDriverActualTPS(t *testing.T) {
	d := NewDriver(NewRenderer(1, 1), GameFunc(func(*Renderer, Input) error { return nil }), nil, nil)
	if err := d.Advance(time.Second); err != nil {
		t.Fatal(err)
	}
	if d.Ticks() != 60 {
		t.Errorf("ticks = %d, want 60", d.Ticks())
	}
	if tps := d.ActualTPS(); tps < 59.9 || tps > 60.1 {
		t.Errorf("ActualTPS = %.2f, want 60", tps)
	}
}

func TestDriverResizeBetweenTicks(t *testing.T) {
	var resizeErr error
	d := NewDriver(NewRenderer(2, 2), GameFunc(func(r *Renderer, _ Input) error {
		resizeErr = r.Resize(4, 4)
		return nil
	}), nil, nil)
	if err := d.Advance(TickLength); err != nil {
		t.Fatal(err)
	}
	if resizeErr != ErrResizeMidFrame {
		t.Errorf("Resize during Tick = %v, want ErrResizeMidFrame", resizeErr)
	}
	if err := d.Renderer().Resize(4, 4); err != nil {
		t.Errorf("Resize between ticks = %v, want nil", err)
	}
}

// fakeClock advances by step on every call.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestDriverRunUntilStop(t *testing.T) {
	ticks := 0
	d := NewDriver(NewRenderer(2, 2), GameFunc(func(*Renderer, Input) error {
		ticks++
		if ticks == 3 {
			return ErrStop
		}
		return nil
	}), nil, nil)

	clock := &fakeClock{t: time.Unix(0, 0), step: TickLength}
	if err := d.Run(context.Background(), clock.now); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
}

func TestDriverRunCancelled(t *testing.T) {
	d := NewDriver(NewRenderer(2, 2), GameFunc(func(*Renderer, Input) error { return nil }), nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
}

func TestDriverRunGameError(t *testing.T) {
	boom := errors.New("boom")
	d := NewDriver(NewRenderer(2, 2), GameFunc(func(*Renderer, Input) error { return boom }), nil, nil)
	clock := &fakeClock{t: time.Unix(0, 0), step: TickLength}
	if err := d.Run(context.Background(), clock.now); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
}
