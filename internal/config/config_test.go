package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadClientDefaults(t *testing.T) {
	c, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, "info", c.LogLevel)
	assert.NotEmpty(t, c.ConfigDir)
}

func TestLoadClientEnvOverrides(t *testing.T) {
	t.Setenv("TODOTERM_API_BASE_URL", "https://todos.example.com")
	t.Setenv("TODOTERM_CONFIG_DIR", "/tmp/todoterm-test")
	t.Setenv("TODOTERM_LOG_LEVEL", "debug")

	c, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://todos.example.com", c.APIBaseURL)
	assert.Equal(t, "/tmp/todoterm-test", c.ConfigDir)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadServerDefaults(t *testing.T) {
	s, err := LoadServer()
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, 1440, s.TokenTTLMin)
}
