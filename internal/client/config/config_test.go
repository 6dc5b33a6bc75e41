package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"authgate"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "session.db", cfg.TokenDBPath)
	assert.Equal(t, 3*time.Second, cfg.ToastDuration)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-a", "http://api.internal:9000", "-t", "30", "-d", "tokens.db")

	cfg := LoadConfig()
	assert.Equal(t, "http://api.internal:9000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "tokens.db", cfg.TokenDBPath)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "server_base_url": "http://json.example:8000",
  "request_timeout": "45s",
  "token_db_path": "json.db",
  "toast_duration": "5s"
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.example:8000", cfg.ServerBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json.db", cfg.TokenDBPath)
	assert.Equal(t, 5*time.Second, cfg.ToastDuration)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url": "http://json.example:8000"}`), 0o600))
	withArgs(t, "-c", path, "-a", "http://flag.example:8000")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.example:8000", cfg.ServerBaseURL)
	// Fields the JSON left out keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
