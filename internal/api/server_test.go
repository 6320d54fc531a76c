package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inputwire/internal/protocol"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireMessage struct {
	Type    protocol.MessageType `json:"type"`
	Seq     uint64               `json:"seq"`
	Payload json.RawMessage      `json:"payload"`
}

func wsURL(base string) string {
	return "ws" + strings.TrimPrefix(base, "http") + "/ws"
}

func TestPublishReachesWebSocketClient(t *testing.T) {
	s := NewServer("")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.hub.stop()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts.URL), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.Status().Clients == 1 }, time.Second, 5*time.Millisecond)

	s.Publish(protocol.Keyboard{Name: "Key_A", Pressed: true, Symbol: 'a', Scancode: 4})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg wireMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, protocol.TypeKeyboard, msg.Type)
	assert.Equal(t, uint64(1), msg.Seq)

	var kb protocol.Keyboard
	require.NoError(t, json.Unmarshal(msg.Payload, &kb))
	assert.Equal(t, "Key_A", kb.Name)
	assert.True(t, kb.Pressed)
}

func TestStatusEndpoint(t *testing.T) {
	s := NewServer("")
	defer s.hub.stop()
	s.Publish(protocol.KeepAlive{})
	s.Publish(protocol.KeepAlive{})
	s.Publish(protocol.InputText{Text: "x"})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var st Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, uint64(3), st.Frames)
	assert.Equal(t, uint64(2), st.ByType[protocol.TypeKeepAlive])
	assert.Equal(t, uint64(1), st.ByType[protocol.TypeInputText])
}

func TestTokenAuth(t *testing.T) {
	s := NewServer("secret")
	defer s.hub.stop()
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
