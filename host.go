package pixel

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxFrameElapsed caps the wall time fed to the driver per host frame, so a
// stalled window does not queue up seconds of ticks.
const maxFrameElapsed = 250 * time.Millisecond

// EbitenHost presents frames in an Ebitengine window and drives a Driver
// from ebiten's Update loop. It implements both Presenter and ebiten.Game.
type EbitenHost struct {
	driver *Driver
	input  *EbitenInput

	frame         []byte
	width, height int
	last          time.Time
}

// NewEbitenHost returns a host with no driver attached. Pass it to NewDriver
// as the Presenter, then call Run.
func NewEbitenHost() *EbitenHost {
	return &EbitenHost{}
}

// Present converts the color buffer to RGBA bytes for the next Draw.
func (h *EbitenHost) Present(color []Color, width, height int) error {
	if n := 4 * len(color); len(h.frame) != n {
		h.frame = make([]byte, n)
	}
	fillRGBA(h.frame, color)
	h.width, h.height = width, height
	return nil
}

// Update advances the driver by the wall time since the previous Update.
func (h *EbitenHost) Update() error {
	now := time.Now()
	elapsed := TickLength
	if !h.last.IsZero() {
		elapsed = min(now.Sub(h.last), maxFrameElapsed)
	}
	h.last = now

	if h.input != nil {
		h.input.sampleWheel()
	}
	if err := h.driver.Advance(elapsed); err != nil {
		if errors.Is(err, ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw writes the last presented frame to the screen.
func (h *EbitenHost) Draw(screen *ebiten.Image) {
	if h.frame == nil || len(h.frame) != 4*h.width*h.height {
		return
	}
	screen.WritePixels(h.frame)
}

// Layout keeps the logical screen at the surface size; ebiten scales it to
// the window.
func (h *EbitenHost) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens a window configured by cfg and blocks until it closes or the
// game returns ErrStop. d must have been created with h as its presenter.
func (h *EbitenHost) Run(d *Driver, cfg Config) error {
	h.driver = d
	h.width, h.height = d.Renderer().Width(), d.Renderer().Height()
	if in, ok := d.Input().(*EbitenInput); ok {
		h.input = in
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(h.width*cfg.Scale, h.height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// RunWindow builds a renderer, live input, driver and window from cfg and
// runs g until the window closes. With cfg.ShowFPS the stats overlay is
// drawn after every tick.
func RunWindow(cfg Config, g Game) error {
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	r := NewRenderer(cfg.Width, cfg.Height)
	r.SetDebugMode(cfg.Debug)

	host := NewEbitenHost()
	var d *Driver
	game := g
	if cfg.ShowFPS {
		game = GameFunc(func(r *Renderer, in Input) error {
			if err := g.Tick(r, in); err != nil {
				return err
			}
			DrawStats(r, ebiten.ActualFPS(), d.ActualTPS(), 2, 2)
			return nil
		})
	}
	d = NewDriver(r, game, NewEbitenInput(), host)
	d.ScreenshotDir = cfg.ScreenshotDir
	d.ScreenshotFormat = cfg.ScreenshotFormat

	return host.Run(d, cfg)
}
