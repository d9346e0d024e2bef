package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// MinRefreshRate and MaxRefreshRate bound the wait between generations, in microseconds.
	MinRefreshRate uint64 = 1
	MaxRefreshRate uint64 = 1_000_000
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	RefreshRate uint64 `json:"refresh_rate_usec" yaml:"refresh_rate_usec"`
	QuitKey     string `json:"quit_key" yaml:"quit_key"` // empty: any key quits
	ShowStatus  bool   `json:"show_status" yaml:"show_status"`
	LiveGlyph   string `json:"live_glyph" yaml:"live_glyph"`
	DeadGlyph   string `json:"dead_glyph" yaml:"dead_glyph"`
	LiveColor   string `json:"live_color" yaml:"live_color"` // empty: terminal default
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFile     string `json:"log_file" yaml:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RefreshRate: 100,
		ShowStatus:  true,
		LiveGlyph:   "█",
		DeadGlyph:   " ",
		LiveColor:   "#ffffff",
		LogLevel:    "warn",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Keys missing from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks every field and reports the first problem found
func (c Config) Validate() error {
	if c.RefreshRate < MinRefreshRate || c.RefreshRate > MaxRefreshRate {
		return errors.Wrapf(ErrInvalidConfig, "refresh rate %d outside [%d, %d] microseconds",
			c.RefreshRate, MinRefreshRate, MaxRefreshRate)
	}
	if utf8.RuneCountInString(c.QuitKey) > 1 {
		return errors.Wrapf(ErrInvalidConfig, "quit key %q must be a single character", c.QuitKey)
	}
	if utf8.RuneCountInString(c.LiveGlyph) != 1 || utf8.RuneCountInString(c.DeadGlyph) != 1 {
		return errors.Wrapf(ErrInvalidConfig, "glyphs %q and %q must be single characters", c.LiveGlyph, c.DeadGlyph)
	}
	if c.LiveColor != "" {
		// Hex scans with Sscanf and ignores trailing junk, so round-trip it
		col, err := colorful.Hex(c.LiveColor)
		if err != nil || !strings.EqualFold(col.Hex(), c.LiveColor) {
			return errors.Wrapf(ErrInvalidConfig, "live color %q must be a hex colour like #ffffff", c.LiveColor)
		}
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q: %v", c.LogLevel, err)
	}
	return nil
}

// RefreshInterval returns the wait between generations
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshRate) * time.Microsecond
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

// QuitRune returns the configured quit key, or false when any key quits
func (c Config) QuitRune() (rune, bool) {
	if c.QuitKey == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.QuitKey)
	return r, true
}
