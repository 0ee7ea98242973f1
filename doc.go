// Package pixel is a software rasterization and compositing core for
// retro-style 2D games, presented through [Ebitengine].
//
// Every pixel is produced on the CPU into a fixed-size ARGB color buffer
// paired with a depth buffer. Opaque bitmaps and atlas tiles are deferred
// into a batch queue that is stable-sorted by depth and replayed at the end
// of each tick; translucent draws, rectangles and text composite immediately.
//
// # Quick start
//
// The simplest way to get started is [RunWindow], which creates a window,
// live input and a 60 TPS frame driver for you:
//
//	game := pixel.GameFunc(func(r *pixel.Renderer, in pixel.Input) error {
//		r.SetDepth(1)
//		r.DrawBitmap(hero, in.MouseX()-8, in.MouseY()-8)
//		r.DrawText("Hello World", 0, 0, pixel.Green)
//		return nil
//	})
//	pixel.RunWindow(pixel.DefaultConfig(), game)
//
// For headless use (tests, offline capture), build a [Driver] with an
// [ImagePresenter] and a [ScriptedInput], then call [Driver.Advance] or
// [Driver.Run].
//
// # Depth
//
// Each color slot records the depth of the draw that last wrote it. A draw
// never replaces a slot stamped with a greater depth; equal depths let the
// later write win. Depth is read from [Renderer.SetDepth] at call time, so
// a deferred draw keeps the depth it was issued with.
//
// # Compositing
//
// Alpha 0 is a no-op, alpha 255 overwrites, anything between blends each
// channel toward the source with integer math truncated toward the
// destination. The result is always opaque.
//
// # Text
//
// [BitmapFont] reads glyph boundaries from sentinel pixels in row 0 of a
// font strip ([GlyphStart], [GlyphEnd]); pixels equal to [GlyphInk] are
// painted with the text color. [DefaultFont] is a built-in 3×5 font.
//
// # Diagnostics
//
// Install a [log/slog] logger with [SetLogger]. With
// [Renderer.SetDebugMode], per-tick stats are logged at debug level.
// [DrawStats] draws an FPS/TPS overlay and [Driver.Screenshot] saves the
// color buffer as PNG or WebP.
//
// Tweens for positions and colors come from [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pixel
