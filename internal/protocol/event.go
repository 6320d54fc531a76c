// Package protocol defines the input event model and its binary wire format.
//
// Every event travels as one frame:
//
//	[length u32 LE] [tag u8] [payload]
//
// where length counts the tag and payload bytes. Payload fields are packed
// little-endian without padding; strings are a u32 byte count, the raw bytes
// and a trailing zero byte.
package protocol

// Tag is the discriminant byte identifying an event variant on the wire.
// Values are fixed for the lifetime of the protocol.
type Tag uint8

const (
	TagMouseMotion      Tag = 0
	TagMouseButton      Tag = 1
	TagMouseWheel       Tag = 2
	TagClientConnect    Tag = 3
	TagClientDisconnect Tag = 4
	TagInputText        Tag = 5
	TagKeyboard         Tag = 6
	TagKeepAlive        Tag = 7
)

var tagNames = [...]string{
	TagMouseMotion:      "MouseMotion",
	TagMouseButton:      "MouseButton",
	TagMouseWheel:       "MouseWheel",
	TagClientConnect:    "ClientConnect",
	TagClientDisconnect: "ClientDisconnect",
	TagInputText:        "InputText",
	TagKeyboard:         "Keyboard",
	TagKeepAlive:        "KeepAlive",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Unknown"
}

// Vec2 is a 2D point in window coordinates.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Event is one of the variants below. The set is closed. Decode always
// returns values; the encoder also accepts pointers to variants.
type Event interface {
	Tag() Tag
	event()
}

// MouseMotion reports a pointer move.
type MouseMotion struct {
	Pos      Vec2   `json:"pos"`
	DeviceID uint32 `json:"device_id"`
	IsTouch  bool   `json:"is_touch"`
}

// MouseButton reports a button press or release. Bit n of Buttons is native
// button n+1.
type MouseButton struct {
	Pos      Vec2   `json:"pos"`
	DeviceID uint32 `json:"device_id"`
	IsTouch  bool   `json:"is_touch"`
	Buttons  uint8  `json:"buttons"`
	Pressed  bool   `json:"pressed"`
}

// MouseWheel reports a wheel step. Delta is only carried on the wire when
// the encoder has wheel deltas enabled.
type MouseWheel struct {
	Pos      Vec2   `json:"pos"`
	DeviceID uint32 `json:"device_id"`
	IsTouch  bool   `json:"is_touch"`
	Buttons  uint8  `json:"buttons"`
	Delta    Vec2   `json:"delta"`
}

// ClientConnect opens a stream.
type ClientConnect struct {
	Description string `json:"description"`
}

// ClientDisconnect closes a stream. Nothing follows it.
type ClientDisconnect struct {
	Description string `json:"description"`
}

// InputText carries composed text verbatim.
type InputText struct {
	Text string `json:"text"`
}

// Keyboard reports a key press or release.
type Keyboard struct {
	Modifiers uint16 `json:"modifiers"`
	Name      string `json:"name"`
	Pressed   bool   `json:"pressed"`
	Symbol    uint32 `json:"symbol"`
	Scancode  uint32 `json:"scancode"`
}

// KeepAlive has no payload.
type KeepAlive struct{}

func (MouseMotion) Tag() Tag      { return TagMouseMotion }
func (MouseButton) Tag() Tag      { return TagMouseButton }
func (MouseWheel) Tag() Tag       { return TagMouseWheel }
func (ClientConnect) Tag() Tag    { return TagClientConnect }
func (ClientDisconnect) Tag() Tag { return TagClientDisconnect }
func (InputText) Tag() Tag        { return TagInputText }
func (Keyboard) Tag() Tag         { return TagKeyboard }
func (KeepAlive) Tag() Tag        { return TagKeepAlive }

func (MouseMotion) event()      {}
func (MouseButton) event()      {}
func (MouseWheel) event()       {}
func (ClientConnect) event()    {}
func (ClientDisconnect) event() {}
func (InputText) event()        {}
func (Keyboard) event()         {}
func (KeepAlive) event()        {}
