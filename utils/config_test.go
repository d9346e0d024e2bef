package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 100*time.Microsecond, c.RefreshInterval())

	_, ok := c.QuitRune()
	assert.False(t, ok, "default config quits on any key")
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "termlife.yaml", `
refresh_rate_usec: 50000
quit_key: q
show_status: false
log_level: debug
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, uint64(50000), c.RefreshRate)
	assert.False(t, c.ShowStatus)
	// unset keys keep defaults
	assert.Equal(t, "█", c.LiveGlyph)

	r, ok := c.QuitRune()
	assert.True(t, ok)
	assert.Equal(t, 'q', r)

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "termlife.json", `{"refresh_rate_usec": 250, "live_glyph": "#"}`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), c.RefreshRate)
	assert.Equal(t, "#", c.LiveGlyph)
	assert.True(t, c.ShowStatus)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[LoadConfig] failed to read file")

	_, err = LoadConfig(writeConfig(t, "bad.json", `{"refresh_rate_usec": "fast"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[LoadConfig] failed to unmarshal")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero refresh", func(c *Config) { c.RefreshRate = 0 }},
		{"refresh too slow", func(c *Config) { c.RefreshRate = MaxRefreshRate + 1 }},
		{"long quit key", func(c *Config) { c.QuitKey = "qq" }},
		{"empty glyph", func(c *Config) { c.DeadGlyph = "" }},
		{"wide glyph", func(c *Config) { c.LiveGlyph = "██" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"named colour", func(c *Config) { c.LiveColor = "red" }},
		{"bad hex digit", func(c *Config) { c.LiveColor = "#12345z" }},
		{"missing hash", func(c *Config) { c.LiveColor = "ffffff" }},
		{"short hex", func(c *Config) { c.LiveColor = "#fff" }},
		{"long hex", func(c *Config) { c.LiveColor = "#ffffff0" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := DefaultConfig()
	c.RefreshRate = MaxRefreshRate
	assert.NoError(t, c.Validate())
	c.RefreshRate = MinRefreshRate
	assert.NoError(t, c.Validate())

	for _, color := range []string{"", "#00ff7f", "#ABCDEF"} {
		c.LiveColor = color
		assert.NoError(t, c.Validate(), "live color %q", color)
	}
}
