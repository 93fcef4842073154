package config

import (
	"fmt"
	"strings"

	"github.com/nibzard/ganttfmt/internal/gantt"
)

// WidthMode selects how column widths are measured.
type WidthMode string

const (
	// WidthRunes counts Unicode scalar values.
	WidthRunes WidthMode = "runes"
	// WidthDisplay counts terminal cells (wide characters are two).
	WidthDisplay WidthMode = "display"
)

// ParseWidthMode normalizes and validates a width mode name.
func ParseWidthMode(s string) (WidthMode, error) {
	switch WidthMode(strings.ToLower(strings.TrimSpace(s))) {
	case WidthRunes, "":
		return WidthRunes, nil
	case WidthDisplay:
		return WidthDisplay, nil
	}
	return "", fmt.Errorf("invalid width mode %q (expected runes|display)", s)
}

// Measure returns the gantt width function for the mode.
func (m WidthMode) Measure() gantt.WidthFunc {
	if m == WidthDisplay {
		return gantt.DisplayWidth
	}
	return gantt.RuneWidth
}

// Default values.
const (
	DefaultWidthMode = WidthRunes
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for the formatter.
type Config struct {
	// ConfigFile is the TOML file the config was loaded from, if any.
	ConfigFile string `toml:"-"`

	// Alignment
	WidthMode WidthMode `toml:"width_mode"`

	// Extra configuration keywords recognized on top of the built-in list.
	Keywords []string `toml:"keywords"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Vocabulary returns the built-in keyword vocabulary extended with Keywords.
func (c *Config) Vocabulary() gantt.Vocabulary {
	return gantt.DefaultVocabulary().WithKeywords(c.Keywords...)
}

func setDefaults(cfg *Config) {
	cfg.WidthMode = DefaultWidthMode
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
