package pixel

import "github.com/hajimehoshi/ebiten/v2"

const keyCount = int(ebiten.KeyMax) + 1

// Input is the per-tick input snapshot read by Game.Tick. Held reports the
// current state; Pressed and Released report a transition since the
// previous Poll. Poll is called by the Driver once at the end of every tick.
type Input interface {
	MouseX() int
	MouseY() int
	// Scroll is -1, 0 or 1; positive when the wheel moved toward the user.
	Scroll() int

	KeyHeld(k Key) bool
	KeyPressed(k Key) bool
	KeyReleased(k Key) bool

	ButtonHeld(b MouseButton) bool
	ButtonPressed(b MouseButton) bool
	ButtonReleased(b MouseButton) bool

	Poll()
}

// inputState holds the current and previous samples of every key and
// button. It backs both EbitenInput and ScriptedInput.
type inputState struct {
	keys     [keyCount]bool
	keysLast [keyCount]bool

	buttons     [mouseButtonCount]bool
	buttonsLast [mouseButtonCount]bool

	mouseX, mouseY int
	scroll         int
}

// advance moves the current sample into the previous one and clears the
// per-tick scroll.
func (s *inputState) advance() {
	s.keysLast = s.keys
	s.buttonsLast = s.buttons
	s.scroll = 0
}

func validKey(k Key) bool { return k >= 0 && int(k) < keyCount }

func (s *inputState) MouseX() int { return s.mouseX }
func (s *inputState) MouseY() int { return s.mouseY }
func (s *inputState) Scroll() int { return s.scroll }

func (s *inputState) KeyHeld(k Key) bool {
	return validKey(k) && s.keys[k]
}

func (s *inputState) KeyPressed(k Key) bool {
	return validKey(k) && s.keys[k] && !s.keysLast[k]
}

func (s *inputState) KeyReleased(k Key) bool {
	return validKey(k) && !s.keys[k] && s.keysLast[k]
}

func (s *inputState) ButtonHeld(b MouseButton) bool {
	return b < mouseButtonCount && s.buttons[b]
}

func (s *inputState) ButtonPressed(b MouseButton) bool {
	return b < mouseButtonCount && s.buttons[b] && !s.buttonsLast[b]
}

func (s *inputState) ButtonReleased(b MouseButton) bool {
	return b < mouseButtonCount && !s.buttons[b] && s.buttonsLast[b]
}

// EbitenInput samples keyboard and mouse state from Ebitengine on every
// Poll. Mouse coordinates are in logical (unscaled) pixels.
type EbitenInput struct {
	inputState
	pendingScroll int
}

// NewEbitenInput returns an input source backed by Ebitengine.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll samples every key, button and the cursor position.
func (e *EbitenInput) Poll() {
	e.advance()
	for k := Key(0); k <= ebiten.KeyMax; k++ {
		e.keys[k] = ebiten.IsKeyPressed(k)
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		e.buttons[b] = ebiten.IsMouseButtonPressed(b.ebitenButton())
	}
	e.mouseX, e.mouseY = ebiten.CursorPosition()
	e.scroll = e.pendingScroll
	e.pendingScroll = 0
}

// sampleWheel records the wheel movement of the current host frame. It is
// called once per ebiten Update so that several ticks in the same frame see
// the scroll only once.
func (e *EbitenInput) sampleWheel() {
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		e.pendingScroll = -1
	case wy < 0:
		e.pendingScroll = 1
	}
}
