package pixel

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLog routes the package logger into a buffer for the test's
// duration.
func captureLog(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugMode_LogsFrameStats(t *testing.T) {
	buf := captureLog(t, slog.LevelDebug)

	r := NewRenderer(8, 8)
	r.SetDebugMode(true)
	r.beginFrame()
	r.DrawBitmap(NewFilledBitmap(2, 2, Red), 0, 0)
	r.DrawText("a\u2603", 0, 0, White)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	r.endFrame()

	out := buf.String()
	for _, want := range []string{"pixel: frame", "queued=1", "flushed=1", "depth_runs=1", "unmapped_glyphs=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	buf := captureLog(t, slog.LevelDebug)

	r := NewRenderer(4, 4)
	r.beginFrame()
	r.DrawRect(0, 0, 2, 2, Red)
	r.endFrame()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}
}

func TestSkippedEntriesWarn(t *testing.T) {
	buf := captureLog(t, slog.LevelWarn)

	r := NewRenderer(4, 4)
	b := NewFilledBitmap(2, 2, Red)
	r.DrawBitmap(b, 0, 0)
	b.Width = 3
	if err := r.Flush(); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "skipped batch entries") {
		t.Errorf("warning missing:\n%s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestUnknownTileNameLogsDebug(t *testing.T) {
	buf := captureLog(t, slog.LevelDebug)
	a := mustAtlas(t, 8, 8, 4, 4)
	a.Named("ghost")
	if !strings.Contains(buf.String(), "name=ghost") {
		t.Errorf("debug log missing tile name:\n%s", buf.String())
	}
}
