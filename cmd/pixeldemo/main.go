// Command pixeldemo opens a window showing an atlas tile, a sprite that
// follows the mouse, a fading banner and "Hello World" text. With -headless
// it runs without a window, optionally replaying an input script.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/pixel"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Surface width in pixels (default: 640)")
	height := flag.Int("height", 0, "Surface height in pixels (default: 360)")
	scale := flag.Int("scale", 0, "Window scale factor (default: 2)")
	debug := flag.Bool("debug", false, "Log per-tick render stats")
	showFPS := flag.Bool("fps", false, "Draw the FPS/TPS overlay")
	shotDir := flag.String("shots", "", "Screenshot directory (default: screenshots)")
	shotFormat := flag.String("format", "", "Screenshot format: png or webp")
	assetDir := flag.String("assets", "", "Directory with tiles.png, sprite.png and optional font.png, tiles.json")
	headless := flag.Bool("headless", false, "Run without a window")
	script := flag.String("script", "", "Input script JSON for -headless")
	ticks := flag.Int("ticks", 0, "Stop after N ticks in -headless mode (default: 120 without a script)")
	out := flag.String("out", "", "Write the last frame as PNG in -headless mode")

	flag.Parse()

	cfg := pixel.DefaultConfig()
	cfg.Title = "Pixel Engine v1.0"
	if *configFile != "" {
		var err error
		cfg, err = pixel.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(pixel.Flags{
		Width:            *width,
		Height:           *height,
		Scale:            *scale,
		Debug:            *debug,
		ShowFPS:          *showFPS,
		ScreenshotDir:    *shotDir,
		ScreenshotFormat: *shotFormat,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	a, err := loadAssets(*assetDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	g, err := newDemo(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*headless {
		if err := pixel.RunWindow(cfg, g); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runHeadless(cfg, g, *script, *ticks, *out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHeadless(cfg pixel.Config, g *demo, scriptPath string, maxTicks int, out string) error {
	var in pixel.Input
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		si, err := pixel.LoadInputScript(data)
		if err != nil {
			return err
		}
		g.script = si
		in = si
	} else if maxTicks <= 0 {
		maxTicks = 120
	}
	g.maxTicks = maxTicks

	r := pixel.NewRenderer(cfg.Width, cfg.Height)
	r.SetDebugMode(cfg.Debug)
	presenter := pixel.NewImagePresenter()
	d := pixel.NewDriver(r, g, in, presenter)
	d.ScreenshotDir = cfg.ScreenshotDir
	d.ScreenshotFormat = cfg.ScreenshotFormat
	g.driver = d

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := d.Run(ctx, nil); err != nil {
		return err
	}
	pixel.Logger().Info("headless run finished", "ticks", d.Ticks(), "frames", presenter.Frames())

	if out == "" || presenter.Image() == nil {
		return nil
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, presenter.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// demo reproduces the classic pixel engine sample scene.
type demo struct {
	assets *assets
	ground *pixel.TileMap

	banner     *pixel.ColorTween
	bannerX    float64
	bannerY    float64
	bannerMove *pixel.TweenGroup
	fadeIn     bool

	script   *pixel.ScriptedInput
	driver   *pixel.Driver
	ticks    int
	maxTicks int
}

const (
	bannerW = 120
	bannerH = 16
	fadeSec = 1.5
)

func newDemo(a *assets) (*demo, error) {
	d := &demo{assets: a, bannerX: -bannerW, bannerY: 40}
	ground, err := newGround(a.tiles)
	if err != nil {
		return nil, err
	}
	d.ground = ground
	d.bannerMove = pixel.TweenPoint(&d.bannerX, &d.bannerY, 120, 40, 2, ease.OutBounce)
	d.banner = pixel.NewColorTween(0x00202080, 0xC0202080, fadeSec, ease.InOutQuad)
	d.fadeIn = true
	return d, nil
}

// newGround builds a checkered floor from the first two atlas tiles, with
// every fifth cell cycling through the first row as an animation.
func newGround(a *pixel.TileAtlas) (*pixel.TileMap, error) {
	const cols, rows = 40, 24
	data := make([]uint32, cols*rows)
	for i := range data {
		data[i] = uint32(1 + (i%cols+i/cols)%2)
		if i%5 == 0 {
			data[i] = 3
		}
	}
	m, err := pixel.NewTileMap(a, cols, rows, data)
	if err != nil {
		return nil, err
	}
	frames := make([]pixel.AnimFrame, 0, a.Columns())
	for i := 0; i < a.Columns(); i++ {
		frames = append(frames, pixel.AnimFrame{GID: uint32(i + 1), Duration: 120})
	}
	m.SetAnimation(3, frames)
	return m, nil
}

func (d *demo) Tick(r *pixel.Renderer, in pixel.Input) error {
	d.ticks++
	if d.ticks == 1 && d.assets.font != nil {
		r.SetFont(d.assets.font)
	}
	if in.KeyPressed(ebiten.KeyEscape) {
		return pixel.ErrStop
	}
	if d.script != nil && d.script.Done() {
		return pixel.ErrStop
	}
	if d.maxTicks > 0 && d.ticks > d.maxTicks {
		return pixel.ErrStop
	}
	if in.KeyPressed(ebiten.KeyA) {
		pixel.Logger().Info("key A pressed", "tick", d.ticks)
	}
	if in.KeyPressed(ebiten.KeyP) && d.driver != nil {
		d.driver.Screenshot("demo")
	}
	if s := in.Scroll(); s != 0 {
		d.bannerY += float64(s * 4)
	}

	d.ground.Update(pixel.TickLength)
	r.SetDepth(0)
	r.DrawTileMap(d.ground, 0, 0)

	r.SetDepth(1)
	r.DrawTile(d.assets.tiles, 20, 20, d.assets.tileX, d.assets.tileY)
	r.DrawRectStroke(16, 16, 39, 39, pixel.Transparent, pixel.White)

	d.bannerMove.Update(pixel.TickDelta)
	c := d.banner.Update(pixel.TickDelta)
	if d.banner.Done() {
		if d.fadeIn {
			d.banner = pixel.NewColorTween(c, 0x00202080, fadeSec, ease.InOutQuad)
		} else {
			d.banner = pixel.NewColorTween(c, 0xC0202080, fadeSec, ease.InOutQuad)
		}
		d.fadeIn = !d.fadeIn
	}

	r.SetDepth(2)
	r.DrawRect(int(d.bannerX), int(d.bannerY), bannerW, bannerH, c)
	r.DrawText("PIXEL ENGINE", int(d.bannerX)+4, int(d.bannerY)+4, pixel.White)

	r.SetDepth(3)
	sw, sh := d.assets.sprite.Width, d.assets.sprite.Height
	r.DrawBitmap(d.assets.sprite, in.MouseX()-sw/2, in.MouseY()-sh/2)

	if in.ButtonHeld(pixel.MouseButtonLeft) {
		r.DrawRectStroke(in.MouseX()-sw/2-1, in.MouseY()-sh/2-1, sw+1, sh+1, pixel.Transparent, pixel.Red)
	}

	r.SetDepth(4)
	r.DrawText("Hello World", 0, 0, 0xFF00FF00)
	return nil
}
