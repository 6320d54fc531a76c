package protocol

// MessageType names an event variant in the JSON view used by the monitor.
type MessageType string

const (
	TypeMouseMotion      MessageType = "mouse_motion"
	TypeMouseButton      MessageType = "mouse_button"
	TypeMouseWheel       MessageType = "mouse_wheel"
	TypeClientConnect    MessageType = "client_connect"
	TypeClientDisconnect MessageType = "client_disconnect"
	TypeInputText        MessageType = "input_text"
	TypeKeyboard         MessageType = "keyboard"
	TypeKeepAlive        MessageType = "keep_alive"
)

var messageTypes = [...]MessageType{
	TagMouseMotion:      TypeMouseMotion,
	TagMouseButton:      TypeMouseButton,
	TagMouseWheel:       TypeMouseWheel,
	TagClientConnect:    TypeClientConnect,
	TagClientDisconnect: TypeClientDisconnect,
	TagInputText:        TypeInputText,
	TagKeyboard:         TypeKeyboard,
	TagKeepAlive:        TypeKeepAlive,
}

// Message is the JSON envelope for one decoded event.
type Message struct {
	Type    MessageType `json:"type"`
	Seq     uint64      `json:"seq"`
	Payload Event       `json:"payload,omitempty"`
}

// NewMessage wraps ev for JSON output.
func NewMessage(seq uint64, ev Event) Message {
	return Message{Type: messageTypes[ev.Tag()], Seq: seq, Payload: ev}
}
