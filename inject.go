package pixel

// ScriptedInput replays a JSON input script one step per Poll. It satisfies
// Input, so a Game cannot tell it apart from live input. Build one with
// LoadInputScript.
type ScriptedInput struct {
	inputState

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	screenshot func(label string)
}

// InjectMove moves the pointer to (x, y).
func (s *ScriptedInput) InjectMove(x, y int) {
	s.mouseX, s.mouseY = x, y
}

// InjectPress moves the pointer to (x, y) and holds b down.
func (s *ScriptedInput) InjectPress(x, y int, b MouseButton) {
	s.InjectMove(x, y)
	if b < mouseButtonCount {
		s.buttons[b] = true
	}
}

// InjectRelease moves the pointer to (x, y) and lets b go.
func (s *ScriptedInput) InjectRelease(x, y int, b MouseButton) {
	s.InjectMove(x, y)
	if b < mouseButtonCount {
		s.buttons[b] = false
	}
}

// InjectKey sets the held state of k.
func (s *ScriptedInput) InjectKey(k Key, down bool) {
	if validKey(k) {
		s.keys[k] = down
	}
}

// InjectScroll reports one wheel notch for the next tick: negative is away
// from the user, positive toward.
func (s *ScriptedInput) InjectScroll(amount int) {
	switch {
	case amount > 0:
		s.scroll = 1
	case amount < 0:
		s.scroll = -1
	default:
		s.scroll = 0
	}
}
