package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// MaxFrameSize bounds the length prefix accepted by Reader.
const MaxFrameSize = 1 << 20

var (
	ErrShortFrame    = errors.New("protocol: frame too short")
	ErrUnknownTag    = errors.New("protocol: unknown event tag")
	ErrTrailingBytes = errors.New("protocol: trailing bytes after payload")
	ErrFrameTooLarge = errors.New("protocol: frame exceeds maximum size")
)

// payloadReader walks a payload; the first short read sticks in err.
type payloadReader struct {
	buf []byte
	off int
	err error
}

func (r *payloadReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.buf)-r.off < n {
		r.err = ErrShortFrame
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *payloadReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *payloadReader) u8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *payloadReader) boolean() bool {
	return r.u8() != 0
}

func (r *payloadReader) u16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (r *payloadReader) u32() uint32 {
	if b := r.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *payloadReader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *payloadReader) vec2() Vec2 {
	x := r.f32()
	y := r.f32()
	return Vec2{X: x, Y: y}
}

// str reads a counted string and skips its terminator byte.
func (r *payloadReader) str() string {
	n := r.u32()
	if r.err != nil {
		return ""
	}
	if uint64(n) > uint64(r.remaining()) {
		r.err = ErrShortFrame
		return ""
	}
	s := string(r.take(int(n)))
	r.take(1)
	return s
}

// Decode parses one frame body (tag and payload, without the length prefix).
func Decode(body []byte) (Event, error) {
	if len(body) == 0 {
		return nil, ErrShortFrame
	}
	tag := Tag(body[0])
	r := &payloadReader{buf: body[1:]}

	var ev Event
	switch tag {
	case TagMouseMotion:
		ev = MouseMotion{Pos: r.vec2(), DeviceID: r.u32(), IsTouch: r.boolean()}
	case TagMouseButton:
		ev = MouseButton{Pos: r.vec2(), DeviceID: r.u32(), IsTouch: r.boolean(), Buttons: r.u8(), Pressed: r.boolean()}
	case TagMouseWheel:
		w := MouseWheel{Pos: r.vec2(), DeviceID: r.u32(), IsTouch: r.boolean(), Buttons: r.u8()}
		if r.err == nil && r.remaining() > 0 {
			w.Delta = r.vec2()
		}
		ev = w
	case TagClientConnect:
		ev = ClientConnect{Description: r.str()}
	case TagClientDisconnect:
		ev = ClientDisconnect{Description: r.str()}
	case TagInputText:
		ev = InputText{Text: r.str()}
	case TagKeyboard:
		ev = Keyboard{Modifiers: r.u16(), Name: r.str(), Pressed: r.boolean(), Symbol: r.u32(), Scancode: r.u32()}
	case TagKeepAlive:
		ev = KeepAlive{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
	}

	if r.err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, r.err)
	}
	if r.remaining() != 0 {
		return nil, fmt.Errorf("decode %s: %w (%d)", tag, ErrTrailingBytes, r.remaining())
	}
	return ev, nil
}

// DecodeFrame parses a complete frame including its length prefix.
func DecodeFrame(frame []byte) (Event, error) {
	if len(frame) < 5 {
		return nil, ErrShortFrame
	}
	n := binary.LittleEndian.Uint32(frame)
	if uint64(n) != uint64(len(frame)-4) {
		return nil, fmt.Errorf("%w: length prefix %d, have %d", ErrShortFrame, n, len(frame)-4)
	}
	return Decode(frame[4:])
}

// Reader reads successive frames from a byte stream.
type Reader struct {
	r   io.Reader
	hdr [4]byte
	buf []byte
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next event. It returns io.EOF at a clean frame boundary
// and io.ErrUnexpectedEOF when the stream ends inside a frame.
func (fr *Reader) Next() (Event, error) {
	if _, err := io.ReadFull(fr.r, fr.hdr[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(fr.hdr[:])
	if n == 0 {
		return nil, ErrShortFrame
	}
	if n > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d", ErrFrameTooLarge, n)
	}
	if cap(fr.buf) < int(n) {
		fr.buf = make([]byte, n)
	}
	fr.buf = fr.buf[:n]
	if _, err := io.ReadFull(fr.r, fr.buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return Decode(fr.buf)
}
