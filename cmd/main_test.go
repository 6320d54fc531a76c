package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"inputwire/internal/config"
	"inputwire/internal/keymap"
	"inputwire/internal/protocol"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEvent(t *testing.T) {
	line := formatEvent(3, protocol.Keyboard{
		Modifiers: uint16(keymap.LeftCtrl),
		Name:      "Key_C",
		Pressed:   true,
		Symbol:    uint32(keymap.SDLK_c),
		Scancode:  6,
	})
	assert.Equal(t, `     3 Keyboard         down SDLK_c name="Key_C" mods=LeftCtrl scancode=6`, line)

	assert.Equal(t, "     1 KeepAlive", formatEvent(1, protocol.KeepAlive{}))
	assert.Equal(t, `     2 InputText        "a\x00b"`, formatEvent(2, protocol.InputText{Text: "a\x00b"}))
}

func TestRouteLogsForDiagnosticReplay(t *testing.T) {
	prevOut, prevReplay := log.Writer(), *replay
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		*replay = prevReplay
	})

	log.SetOutput(os.Stderr)
	*replay = ""
	routeLogs("-")
	assert.Equal(t, io.Writer(os.Stderr), log.Writer(), "dump mode keeps logs on stderr")

	*replay = "script.jsonl"
	routeLogs("/tmp/events.bin")
	assert.Equal(t, io.Writer(os.Stderr), log.Writer())

	routeLogs("-")
	assert.Equal(t, io.Writer(os.Stdout), log.Writer())
}

func TestPersistConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputwire", "config.json")
	m := config.NewManagerAt(path)

	cfg := config.DefaultConfig()
	cfg.Destination = "-"
	cfg.KeepAliveSeconds = 3
	require.NoError(t, persistConfig(m, cfg))

	loaded := config.NewManagerAt(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, cfg, loaded.Get())
}
