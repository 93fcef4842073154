package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file named by -config
// 3. CLI flags
//
// Flags are registered on fs, which may already carry caller-defined flags.
// Positional arguments are left in fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("formatter", flag.ContinueOnError)
	}

	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	var (
		configFile string
		widthMode  string
		keywords   string
		logLevel   string
		logFormat  string
	)
	fs.StringVar(&configFile, "config", "", "Path to a TOML config file")
	fs.StringVar(&widthMode, "width-mode", string(cfg.WidthMode), "Column width measure (runes|display)")
	fs.StringVar(&keywords, "keywords", "", "Comma-separated extra configuration keywords")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 2. Load the config file, if one was named
	if configFile != "" {
		path := expandPath(configFile)
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	// 3. Explicitly set flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width-mode":
			cfg.WidthMode = WidthMode(widthMode)
		case "keywords":
			cfg.Keywords = append(cfg.Keywords, splitList(keywords)...)
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		}
	})

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads defaults overlaid with the TOML file at path.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)
	if err := loadConfigFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.ConfigFile = path
	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile validates and decodes the TOML config at path into cfg.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return err
	}
	if err := validateDocument(raw); err != nil {
		return err
	}

	_, err = toml.Decode(string(data), cfg)
	return err
}

// finalizeConfig normalizes values and rejects ones the schema cannot express.
func finalizeConfig(cfg *Config) error {
	mode, err := ParseWidthMode(string(cfg.WidthMode))
	if err != nil {
		return err
	}
	cfg.WidthMode = mode
	for _, kw := range cfg.Keywords {
		if kw == "" || strings.ContainsAny(kw, " \t:") {
			return fmt.Errorf("invalid keyword %q", kw)
		}
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return nil
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
