package channel

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"inputwire/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, data []byte) []protocol.Event {
	t.Helper()
	var out []protocol.Event
	r := protocol.NewReader(bytes.NewReader(data))
	for {
		ev, err := r.Next()
		if err != nil {
			break
		}
		out = append(out, ev)
	}
	return out
}

type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errors.New("broken pipe")
	}
	w.n++
	return len(p), nil
}

func TestParseDestination(t *testing.T) {
	assert.Equal(t, Destination{Kind: KindDisabled}, ParseDestination(""))
	assert.Equal(t, Destination{Kind: KindDiagnostic}, ParseDestination("-"))
	assert.Equal(t, Destination{Kind: KindFile, Path: "/tmp/x.bin"}, ParseDestination("/tmp/x.bin"))
}

func TestDisabledChannelWritesNothing(t *testing.T) {
	var diag bytes.Buffer
	c := New(WithDiagnostic(&diag))
	require.NoError(t, c.Open(""))
	assert.False(t, c.Active())

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Send(protocol.KeepAlive{}))
	}
	require.NoError(t, c.Close())
	assert.Zero(t, diag.Len())
	assert.Equal(t, Stats{}, c.Stats())
}

func TestLifecycleFrames(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithDescription("player"))
	assert.Equal(t, StateUninitialized, c.State())

	require.NoError(t, c.OpenWriter(&buf, "buffer"))
	assert.Equal(t, StateConnected, c.State())

	require.NoError(t, c.Send(protocol.InputText{Text: "hi"}))
	assert.Equal(t, StateWriting, c.State())
	require.NoError(t, c.Send(protocol.KeepAlive{}))

	require.NoError(t, c.Close())
	assert.Equal(t, StateUninitialized, c.State())

	// no frames after the disconnect
	require.NoError(t, c.Send(protocol.KeepAlive{}))
	require.NoError(t, c.Close())

	events := readAll(t, buf.Bytes())
	assert.Equal(t, []protocol.Event{
		protocol.ClientConnect{Description: "player"},
		protocol.InputText{Text: "hi"},
		protocol.KeepAlive{},
		protocol.ClientDisconnect{Description: "player"},
	}, events)
	assert.Equal(t, uint64(4), c.Stats().Frames)
	assert.Equal(t, uint64(buf.Len()), c.Stats().Bytes)
}

func TestConnectFrameIsFlushedImmediately(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	require.NoError(t, c.OpenWriter(&buf, "buffer"))
	assert.Equal(t, []protocol.Event{protocol.ClientConnect{Description: DefaultDescription}}, readAll(t, buf.Bytes()))
}

func TestOpenFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.bin")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must go"), 0644))

	c := New(WithDescription("file"))
	require.NoError(t, c.Open(path))
	require.NoError(t, c.Send(protocol.MouseMotion{Pos: protocol.Vec2{X: 1, Y: 1}}))

	// flushed per frame, readable before close
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, readAll(t, data), 2)

	require.NoError(t, c.Close())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	events := readAll(t, data)
	require.Len(t, events, 3)
	assert.Equal(t, protocol.ClientConnect{Description: "file"}, events[0])
	assert.Equal(t, protocol.ClientDisconnect{Description: "file"}, events[2])
}

func TestOpenFailureLeavesChannelDisabled(t *testing.T) {
	c := New()
	err := c.Open(filepath.Join(t.TempDir(), "missing", "dir", "events.bin"))
	assert.ErrorIs(t, err, ErrOpenFailed)
	assert.False(t, c.Active())
	assert.Equal(t, StateUninitialized, c.State())
	assert.NoError(t, c.Send(protocol.KeepAlive{}))
	assert.NoError(t, c.Close())
}

func TestDiagnosticStream(t *testing.T) {
	var diag bytes.Buffer
	c := New(WithDiagnostic(&diag))
	require.NoError(t, c.Open(DiagnosticMarker))
	require.NoError(t, c.Send(protocol.KeepAlive{}))
	require.NoError(t, c.Close())
	assert.Len(t, readAll(t, diag.Bytes()), 3)
}

func TestDiagnosticStreamSharedWithLogger(t *testing.T) {
	var diag, moved bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&diag)
	t.Cleanup(func() { log.SetOutput(prev) })

	c := New(WithDiagnostic(&diag), WithLogOutput(&moved), WithDescription("player"))
	require.NoError(t, c.Open(DiagnosticMarker))
	log.Printf("Host: unrelated line")
	require.NoError(t, c.Send(protocol.InputText{Text: "a"}))
	require.NoError(t, c.Close())
	stream := append([]byte(nil), diag.Bytes()...)

	r := protocol.NewReader(bytes.NewReader(stream))
	var events []protocol.Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
	assert.Equal(t, []protocol.Event{
		protocol.ClientConnect{Description: "player"},
		protocol.InputText{Text: "a"},
		protocol.ClientDisconnect{Description: "player"},
	}, events)

	assert.Contains(t, moved.String(), "Host: unrelated line")
	assert.Contains(t, moved.String(), "Channel: Closed")
	assert.Equal(t, io.Writer(&diag), log.Writer())
}

func TestOpenTwice(t *testing.T) {
	var buf bytes.Buffer
	c := New()
	require.NoError(t, c.OpenWriter(&buf, "a"))
	assert.ErrorIs(t, c.OpenWriter(&buf, "b"), ErrAlreadyOpen)
}

func TestWriteFailureDisablesChannel(t *testing.T) {
	w := &failingWriter{after: 1}
	c := New()
	require.NoError(t, c.OpenWriter(w, "pipe"))

	err := c.Send(protocol.KeepAlive{})
	assert.Error(t, err)
	assert.False(t, c.Active())

	assert.NoError(t, c.Send(protocol.KeepAlive{}))
	assert.NoError(t, c.Close())
	assert.Equal(t, uint64(1), c.Stats().Frames)
}

func TestKeyNameEncoderOption(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithEncoder(protocol.Encoder{OmitKeyNames: true}))
	require.NoError(t, c.OpenWriter(&buf, "buffer"))
	require.NoError(t, c.Send(protocol.Keyboard{Name: "Key_A", Symbol: 'a'}))

	events := readAll(t, buf.Bytes())
	require.Len(t, events, 2)
	assert.Equal(t, protocol.Keyboard{Symbol: 'a'}, events[1])
}
