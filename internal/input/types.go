// Package input translates native SDL2 input events into protocol events.
package input

import "inputwire/internal/keymap"

// Kind identifies a native event type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindMouseMotion
	KindMouseButtonDown
	KindMouseButtonUp
	KindMouseWheel
	KindKeyDown
	KindKeyUp
	KindTextInput
	KindWindowResized
	KindWindowExposed
	KindQuit
)

var kindNames = map[string]Kind{
	"mouse_motion":      KindMouseMotion,
	"mouse_button_down": KindMouseButtonDown,
	"mouse_button_up":   KindMouseButtonUp,
	"mouse_wheel":       KindMouseWheel,
	"key_down":          KindKeyDown,
	"key_up":            KindKeyUp,
	"text_input":        KindTextInput,
	"window_resized":    KindWindowResized,
	"window_exposed":    KindWindowExposed,
	"quit":              KindQuit,
}

// ParseKind maps a script name such as "key_down" to its Kind.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindNames[s]
	return k, ok
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// TouchMouseID is the device id SDL assigns to mouse events synthesized
// from touch input (SDL_TOUCH_MOUSEID).
const TouchMouseID uint32 = 0xFFFFFFFF

// IsTouch reports whether a pointer device id denotes touch input.
func IsTouch(which uint32) bool {
	return which == TouchMouseID
}

// NativeEvent carries the fields of an SDL event that the adapter reads.
type NativeEvent struct {
	Kind Kind

	// Pointer position in window coordinates. For wheel events this is
	// the pointer position (SDL_MouseWheelEvent.mouseX/mouseY), not the
	// scroll amount.
	X, Y float32

	// Wheel scroll amount: SDL_MouseWheelEvent.x/y (preciseX/preciseY
	// where available). Unused by other kinds.
	DeltaX, DeltaY float32

	// Which is the pointer device id.
	Which uint32

	// Button is the 1-based SDL button number.
	Button uint8

	Sym      keymap.Keycode
	Scancode uint32
	Mod      keymap.Keymod

	Text string

	// New window size for KindWindowResized.
	Width, Height int
}

// Source yields native events one at a time. Poll must not block; it
// returns false when no event is pending.
type Source interface {
	Poll() (NativeEvent, bool)
}
