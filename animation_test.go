package pixel

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPointReachesTarget(t *testing.T) {
	x, y := 10.0, 20.0
	g := TweenPoint(&x, &y, 100, 200, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-100) > 0.5 || math.Abs(y-200) > 0.5 {
		t.Errorf("point = (%f, %f), want ~(100, 200)", x, y)
	}
}

func TestTweenValueMidpoint(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 10, 1.0, ease.Linear)
	g.Update(0.5)
	if g.Done {
		t.Error("should not be done halfway")
	}
	if math.Abs(v-5) > 0.01 {
		t.Errorf("v = %f, want ~5", v)
	}
}

func TestTweenGroupDoneStopsWrites(t *testing.T) {
	v := 0.0
	g := TweenValue(&v, 1, 0.5, ease.Linear)
	g.Update(0.5)
	v = 42
	g.Update(0.5)
	if v != 42 {
		t.Errorf("v = %f, a finished group must not write", v)
	}
}

func TestTweenGroupReset(t *testing.T) {
	v := 3.0
	g := TweenValue(&v, 9, 0.5, ease.Linear)
	g.Update(0.5)
	g.Reset()
	if g.Done || v != 3 {
		t.Errorf("after Reset: done=%v v=%f, want false 3", g.Done, v)
	}
	g.Update(0.25)
	if math.Abs(v-6) > 0.01 {
		t.Errorf("v = %f, want ~6", v)
	}
}

func TestColorTween(t *testing.T) {
	ct := NewColorTween(0x00000000, 0xFF204080, 1.0, ease.Linear)
	if got := ct.Color(); got != 0x00000000 {
		t.Errorf("start = %#08x, want 0", got)
	}

	mid := ct.Update(0.5)
	if d := absDiff(mid.A(), 0x80); d > 1 {
		t.Errorf("mid alpha = %#02x, want ~0x80", mid.A())
	}

	end := ct.Update(0.5)
	if !ct.Done() || end != 0xFF204080 {
		t.Errorf("end = %#08x done=%v, want 0xFF204080 true", end, ct.Done())
	}
}

func TestChannelClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-4, 0}, {0.4, 0}, {127.5, 128}, {255, 255}, {300, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
