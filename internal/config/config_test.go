package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "", cfg.Destination)
	assert.Equal(t, "inputwire", cfg.Description)
	assert.Equal(t, time.Duration(0), cfg.KeepAlive())
	assert.Equal(t, 18090, cfg.Monitor.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	m := NewManagerAt(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, m.Load())
	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	m := NewManagerAt(path)

	cfg := DefaultConfig()
	cfg.Destination = "/tmp/events.bin"
	cfg.KeepAliveSeconds = 5
	cfg.WheelDelta = true
	m.Set(cfg)
	require.NoError(t, m.Save())

	loaded := NewManagerAt(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, cfg, loaded.Get())
	assert.Equal(t, 5*time.Second, loaded.Get().KeepAlive())
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"destination":"-"}`), 0644))

	m := NewManagerAt(path)
	require.NoError(t, m.Load())
	assert.Equal(t, "-", m.Get().Destination)
	assert.Equal(t, "inputwire", m.Get().Description)
	assert.Equal(t, 18090, m.Get().Monitor.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keep_alive_seconds":-1}`), 0644))
	assert.Error(t, NewManagerAt(path).Load())

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	assert.Error(t, NewManagerAt(path).Load())
}
