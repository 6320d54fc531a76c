package input

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"inputwire/internal/keymap"
)

var ErrBadScript = errors.New("input: bad script line")

// scriptLine is one JSON line of a replay script, e.g.
//
//	{"kind":"key_down","key":"SDLK_a","mod":1,"scancode":4}
//	{"kind":"mouse_button_down","x":10,"y":20,"button":1}
//	{"kind":"mouse_wheel","x":10,"y":20,"dy":-1}
//	{"kind":"window_resized","width":640,"height":480}
//	{"wait_ms":1500}
//
// For wheel lines x/y is the pointer position and dx/dy the scroll amount.
type scriptLine struct {
	Kind     string  `json:"kind"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	DX       float32 `json:"dx"`
	DY       float32 `json:"dy"`
	Which    uint32  `json:"which"`
	Button   uint8   `json:"button"`
	Key      string  `json:"key"`
	Sym      uint32  `json:"sym"`
	Scancode uint32  `json:"scancode"`
	Mod      uint16  `json:"mod"`
	Text     string  `json:"text"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	WaitMS   int     `json:"wait_ms"`
}

type scriptStep struct {
	ev   NativeEvent
	wait time.Duration
}

// ScriptSource replays native events from a JSON-lines script. A line with
// wait_ms holds back the following events for that long.
type ScriptSource struct {
	steps []scriptStep
	next  int
	until time.Time
	now   func() time.Time
}

// NewScriptSource parses a whole script. Blank lines and lines starting
// with '#' are skipped.
func NewScriptSource(r io.Reader) (*ScriptSource, error) {
	s := &ScriptSource{now: time.Now}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		step, err := parseScriptLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s.steps = append(s.steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseScriptLine(text string) (scriptStep, error) {
	var line scriptLine
	if err := json.Unmarshal([]byte(text), &line); err != nil {
		return scriptStep{}, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	if line.Kind == "" {
		if line.WaitMS <= 0 {
			return scriptStep{}, fmt.Errorf("%w: missing kind", ErrBadScript)
		}
		return scriptStep{wait: time.Duration(line.WaitMS) * time.Millisecond}, nil
	}
	kind, ok := ParseKind(line.Kind)
	if !ok {
		return scriptStep{}, fmt.Errorf("%w: unknown kind %q", ErrBadScript, line.Kind)
	}

	sym := keymap.Keycode(line.Sym)
	if line.Key != "" {
		code, ok := keymap.Lookup(line.Key)
		if !ok {
			return scriptStep{}, fmt.Errorf("%w: unknown key %q", ErrBadScript, line.Key)
		}
		sym = code
	}

	return scriptStep{ev: NativeEvent{
		Kind:     kind,
		X:        line.X,
		Y:        line.Y,
		DeltaX:   line.DX,
		DeltaY:   line.DY,
		Which:    line.Which,
		Button:   line.Button,
		Sym:      sym,
		Scancode: line.Scancode,
		Mod:      keymap.Keymod(line.Mod),
		Text:     line.Text,
		Width:    line.Width,
		Height:   line.Height,
	}}, nil
}

// Poll returns the next scripted event unless a wait is pending.
func (s *ScriptSource) Poll() (NativeEvent, bool) {
	for s.next < len(s.steps) {
		if !s.until.IsZero() {
			if s.now().Before(s.until) {
				return NativeEvent{}, false
			}
			s.until = time.Time{}
		}
		step := s.steps[s.next]
		s.next++
		if step.wait > 0 {
			s.until = s.now().Add(step.wait)
			continue
		}
		return step.ev, true
	}
	return NativeEvent{}, false
}

// Done reports whether every scripted event has been delivered.
func (s *ScriptSource) Done() bool {
	return s.next >= len(s.steps) && (s.until.IsZero() || !s.now().Before(s.until))
}

// Len returns the number of scripted steps, waits included.
func (s *ScriptSource) Len() int {
	return len(s.steps)
}
