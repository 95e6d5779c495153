package bootstrap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardgamehub/boardgame-ui/config"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("BOARDGAME_API_URL", "http://backend:8080/api/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.HTTP.Addr)
	assert.Equal(t, config.StoreMemory, cfg.Session.Store)
	assert.Equal(t, "http://backend:8080/api", cfg.Backend.APIURL, "trailing slash is trimmed")
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_STORE", "cassandra")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	buf.Reset()
	newLogger(&buf, config.LoggingConfig{Level: "info", Format: "text"}).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
