package input

import (
	"inputwire/internal/keymap"
	"inputwire/internal/protocol"
)

// SDL button numbers.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
	ButtonX1     uint8 = 4
	ButtonX2     uint8 = 5
)

// buttonMasks maps a native button number to its bit in the protocol mask.
var buttonMasks = [...]uint8{
	ButtonLeft:   1 << 0,
	ButtonMiddle: 1 << 1,
	ButtonRight:  1 << 2,
	ButtonX1:     1 << 3,
	ButtonX2:     1 << 4,
}

// ButtonMask returns the protocol mask for native button n, or 0 for
// buttons outside the standard five.
func ButtonMask(n uint8) uint8 {
	if int(n) < len(buttonMasks) {
		return buttonMasks[n]
	}
	return 0
}

// Sink receives translated events.
type Sink interface {
	Send(ev protocol.Event) error
}

// Translate converts a native event into a protocol event. Nothing is
// forwarded while the host window has zero width, and window or quit events
// never produce an event.
func Translate(ev NativeEvent, width int) (protocol.Event, bool) {
	if width == 0 {
		return nil, false
	}

	pos := protocol.Vec2{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case KindMouseMotion:
		return protocol.MouseMotion{Pos: pos, DeviceID: ev.Which, IsTouch: IsTouch(ev.Which)}, true
	case KindMouseButtonDown, KindMouseButtonUp:
		return protocol.MouseButton{
			Pos:      pos,
			DeviceID: ev.Which,
			IsTouch:  IsTouch(ev.Which),
			Buttons:  ButtonMask(ev.Button),
			Pressed:  ev.Kind == KindMouseButtonDown,
		}, true
	case KindMouseWheel:
		return protocol.MouseWheel{
			Pos:      pos,
			DeviceID: ev.Which,
			IsTouch:  IsTouch(ev.Which),
			Delta:    protocol.Vec2{X: ev.DeltaX, Y: ev.DeltaY},
		}, true
	case KindKeyDown, KindKeyUp:
		return protocol.Keyboard{
			Modifiers: uint16(keymap.PackModifiers(ev.Mod)),
			Name:      keymap.Translate(ev.Sym),
			Pressed:   ev.Kind == KindKeyDown,
			Symbol:    uint32(ev.Sym),
			Scancode:  ev.Scancode,
		}, true
	case KindTextInput:
		return protocol.InputText{Text: ev.Text}, true
	}
	return nil, false
}

// Adapter forwards native events to a sink.
type Adapter struct {
	sink Sink

	forwarded uint64
	dropped   uint64
}

// NewAdapter creates an adapter writing to sink.
func NewAdapter(sink Sink) *Adapter {
	return &Adapter{sink: sink}
}

// Handle translates ev and sends it. Send errors are not reported back to
// the caller; the sink decides what a failed write means. It returns true
// when an event was forwarded.
func (a *Adapter) Handle(ev NativeEvent, width int) bool {
	pev, ok := Translate(ev, width)
	if !ok {
		a.dropped++
		return false
	}
	_ = a.sink.Send(pev)
	a.forwarded++
	return true
}

// Counts returns how many native events were forwarded and dropped.
func (a *Adapter) Counts() (forwarded, dropped uint64) {
	return a.forwarded, a.dropped
}
