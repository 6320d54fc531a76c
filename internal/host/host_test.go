package host

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"inputwire/internal/channel"
	"inputwire/internal/input"
	"inputwire/internal/keymap"
	"inputwire/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	events []input.NativeEvent
}

func (s *sliceSource) Poll() (input.NativeEvent, bool) {
	if len(s.events) == 0 {
		return input.NativeEvent{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func decodeAll(t *testing.T, data []byte) []protocol.Event {
	t.Helper()
	var out []protocol.Event
	r := protocol.NewReader(bytes.NewReader(data))
	for {
		ev, err := r.Next()
		if err != nil {
			return out
		}
		out = append(out, ev)
	}
}

func openChannel(t *testing.T, buf *bytes.Buffer) *channel.Channel {
	t.Helper()
	ch := channel.New(channel.WithDescription("test"))
	require.NoError(t, ch.OpenWriter(buf, "buffer"))
	return ch
}

func TestRunForwardsAfterResizeAndClosesOnQuit(t *testing.T) {
	var buf bytes.Buffer
	h := New(openChannel(t, &buf), Options{RefreshRate: time.Millisecond})

	src := &sliceSource{events: []input.NativeEvent{
		{Kind: input.KindMouseMotion, X: 1, Y: 1},
		{Kind: input.KindWindowResized, Width: 640, Height: 480},
		{Kind: input.KindKeyDown, Sym: keymap.SDLK_a, Scancode: 4},
		{Kind: input.KindWindowExposed},
		{Kind: input.KindQuit},
		{Kind: input.KindTextInput, Text: "after quit"},
	}}

	require.NoError(t, h.Run(context.Background(), src))

	w, hgt := h.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, hgt)

	events := decodeAll(t, buf.Bytes())
	require.Len(t, events, 3)
	assert.Equal(t, protocol.ClientConnect{Description: "test"}, events[0])
	assert.Equal(t, "Key_A", events[1].(protocol.Keyboard).Name)
	assert.Equal(t, protocol.ClientDisconnect{Description: "test"}, events[2])

	forwarded, dropped := h.Adapter().Counts()
	assert.Equal(t, uint64(1), forwarded)
	assert.Equal(t, uint64(1), dropped)
}

func TestRunClosesOnCancel(t *testing.T) {
	var buf bytes.Buffer
	h := New(openChannel(t, &buf), Options{RefreshRate: time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := h.Run(ctx, &sliceSource{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	events := decodeAll(t, buf.Bytes())
	require.Len(t, events, 2)
	assert.Equal(t, protocol.ClientDisconnect{Description: "test"}, events[1])
}

func TestRunStopsWhenScriptDrained(t *testing.T) {
	var buf bytes.Buffer
	h := New(openChannel(t, &buf), Options{RefreshRate: time.Millisecond, StopWhenDrained: true})

	src, err := input.NewScriptSource(strings.NewReader(
		`{"kind":"window_resized","width":10,"height":10}` + "\n" +
			`{"kind":"text_input","text":"hi"}`))
	require.NoError(t, err)

	require.NoError(t, h.Run(context.Background(), src))
	events := decodeAll(t, buf.Bytes())
	require.Len(t, events, 3)
	assert.Equal(t, protocol.InputText{Text: "hi"}, events[1])
}

func TestIdleKeepAlive(t *testing.T) {
	var buf bytes.Buffer
	h := New(openChannel(t, &buf), Options{KeepAlive: time.Second})

	now := time.Unix(100, 0)
	h.now = func() time.Time { return now }
	h.lastSend = now

	h.Idle()
	now = now.Add(500 * time.Millisecond)
	h.Idle()
	assert.Len(t, decodeAll(t, buf.Bytes()), 1)

	now = now.Add(600 * time.Millisecond)
	h.Idle()
	events := decodeAll(t, buf.Bytes())
	require.Len(t, events, 2)
	assert.Equal(t, protocol.KeepAlive{}, events[1])

	// activity resets the idle timer
	h.HandleEvent(input.NativeEvent{Kind: input.KindWindowResized, Width: 1, Height: 1})
	h.HandleEvent(input.NativeEvent{Kind: input.KindTextInput, Text: "x"})
	now = now.Add(900 * time.Millisecond)
	h.Idle()
	assert.Len(t, decodeAll(t, buf.Bytes()), 3)
}

func TestShutdownOnce(t *testing.T) {
	var buf bytes.Buffer
	h := New(openChannel(t, &buf), Options{})
	h.Shutdown()
	h.Shutdown()
	assert.Len(t, decodeAll(t, buf.Bytes()), 2)
}
