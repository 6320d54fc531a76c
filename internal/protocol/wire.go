package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Primitive encoders. All multi-byte values are little-endian.

func AppendUint8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func AppendUint16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func AppendUint64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendFloat32 writes the IEEE-754 single precision bit pattern of v.
func AppendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

// AppendString writes the byte count, the bytes and a zero terminator.
// Embedded zero bytes are kept; readers rely on the count, not the
// terminator.
func AppendString(dst []byte, s string) []byte {
	dst = AppendUint32(dst, uint32(len(s)))
	dst = append(dst, s...)
	return append(dst, 0)
}

func AppendVec2(dst []byte, v Vec2) []byte {
	dst = AppendFloat32(dst, v.X)
	return AppendFloat32(dst, v.Y)
}

// StringSize is the encoded size of a string of n bytes.
func StringSize(n int) int {
	return 4 + n + 1
}

// Encoder turns events into frames. The zero value encodes the standard
// layout.
type Encoder struct {
	// OmitKeyNames encodes Keyboard.Name as an empty string, for readers
	// that predate key names on the wire.
	OmitKeyNames bool

	// WheelDelta appends MouseWheel.Delta after the buttons field.
	WheelDelta bool
}

// Encode returns the standard frame for ev.
func Encode(ev Event) []byte {
	return Encoder{}.AppendFrame(nil, ev)
}

// Encode returns the frame for ev.
func (e Encoder) Encode(ev Event) []byte {
	return e.AppendFrame(nil, ev)
}

// AppendFrame appends the length prefix, tag and payload of ev to dst.
// Pointers to variants are encoded as their values.
func (e Encoder) AppendFrame(dst []byte, ev Event) []byte {
	ev = indirect(ev)
	start := len(dst)
	dst = append(dst, 0, 0, 0, 0)
	dst = append(dst, byte(ev.Tag()))

	switch v := ev.(type) {
	case MouseMotion:
		dst = AppendVec2(dst, v.Pos)
		dst = AppendUint32(dst, v.DeviceID)
		dst = AppendBool(dst, v.IsTouch)
	case MouseButton:
		dst = AppendVec2(dst, v.Pos)
		dst = AppendUint32(dst, v.DeviceID)
		dst = AppendBool(dst, v.IsTouch)
		dst = AppendUint8(dst, v.Buttons)
		dst = AppendBool(dst, v.Pressed)
	case MouseWheel:
		dst = AppendVec2(dst, v.Pos)
		dst = AppendUint32(dst, v.DeviceID)
		dst = AppendBool(dst, v.IsTouch)
		dst = AppendUint8(dst, v.Buttons)
		if e.WheelDelta {
			dst = AppendVec2(dst, v.Delta)
		}
	case ClientConnect:
		dst = AppendString(dst, v.Description)
	case ClientDisconnect:
		dst = AppendString(dst, v.Description)
	case InputText:
		dst = AppendString(dst, v.Text)
	case Keyboard:
		dst = AppendUint16(dst, v.Modifiers)
		if e.OmitKeyNames {
			dst = AppendString(dst, "")
		} else {
			dst = AppendString(dst, v.Name)
		}
		dst = AppendBool(dst, v.Pressed)
		dst = AppendUint32(dst, v.Symbol)
		dst = AppendUint32(dst, v.Scancode)
	case KeepAlive:
	default:
		panic(fmt.Sprintf("protocol: cannot encode %T", ev))
	}

	binary.LittleEndian.PutUint32(dst[start:], uint32(len(dst)-start-4))
	return dst
}

func indirect(ev Event) Event {
	switch v := ev.(type) {
	case *MouseMotion:
		return *v
	case *MouseButton:
		return *v
	case *MouseWheel:
		return *v
	case *ClientConnect:
		return *v
	case *ClientDisconnect:
		return *v
	case *InputText:
		return *v
	case *Keyboard:
		return *v
	case *KeepAlive:
		return *v
	}
	return ev
}

// WriteFrame encodes ev and hands the whole frame to w in a single Write.
// It returns the number of bytes written.
func (e Encoder) WriteFrame(w io.Writer, ev Event) (int, error) {
	return w.Write(e.AppendFrame(nil, ev))
}
