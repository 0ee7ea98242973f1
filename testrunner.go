package pixel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button string `json:"button,omitempty"`
	Key    string `json:"key,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Frames int    `json:"frames,omitempty"`

	button MouseButton
	key    Key
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadInputScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "move", "x": 10, "y": 20},
//	  {"action": "click", "x": 10, "y": 20, "button": "left"},
//	  {"action": "key_down", "key": "Space"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "after-click"}
//	]}
//
// Actions are move, press, release, click, key_down, key_up, scroll, wait
// and screenshot. A click takes two ticks: press then release.
func LoadInputScript(jsonData []byte) (*ScriptedInput, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("pixel: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("pixel: parse input script: no steps")
	}

	steps := make([]scriptStep, 0, len(script.Steps))
	for i, st := range script.Steps {
		st.Action = strings.ToLower(st.Action)
		switch st.Action {
		case "move", "scroll", "wait", "screenshot":
		case "press", "release", "click":
			b, err := parseButton(st.Button)
			if err != nil {
				return nil, fmt.Errorf("pixel: input script step %d: %w", i, err)
			}
			st.button = b
		case "key_down", "key_up":
			k, ok := parseKey(st.Key)
			if !ok {
				return nil, fmt.Errorf("pixel: input script step %d: unknown key %q", i, st.Key)
			}
			st.key = k
		default:
			return nil, fmt.Errorf("pixel: input script step %d: unknown action %q", i, st.Action)
		}

		if st.Action == "click" {
			press, release := st, st
			press.Action, release.Action = "press", "release"
			steps = append(steps, press, release)
			continue
		}
		steps = append(steps, st)
	}
	return &ScriptedInput{steps: steps}, nil
}

func parseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

// parseKey matches name against Ebitengine's key names, ignoring case.
func parseKey(name string) (Key, bool) {
	if name == "" {
		return 0, false
	}
	for k := Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// Done reports whether every step of the script has run.
func (s *ScriptedInput) Done() bool {
	return s.done
}

// Poll closes the current tick's sample and runs the next script step.
func (s *ScriptedInput) Poll() {
	s.advance()
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		s.InjectMove(st.X, st.Y)
	case "press":
		s.InjectPress(st.X, st.Y, st.button)
	case "release":
		s.InjectRelease(st.X, st.Y, st.button)
	case "key_down":
		s.InjectKey(st.key, true)
	case "key_up":
		s.InjectKey(st.key, false)
	case "scroll":
		s.InjectScroll(st.Amount)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this poll counts as one
		}
	case "screenshot":
		if s.screenshot != nil {
			s.screenshot(st.Label)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
