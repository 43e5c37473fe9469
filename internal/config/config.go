// Package config loads the settings of the monkey command: REPL behaviour and
// logging. Files are TOML or YAML, chosen by extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// REPL modes.
const (
	ModeTokens = "tokens"
	ModeAST    = "ast"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MONKEY_CONFIG"

// Config holds the complete application configuration
type Config struct {
	REPL REPLConfig `toml:"repl" yaml:"repl"`
	Log  LogConfig  `toml:"log" yaml:"log"`
}

// REPLConfig holds settings of the interactive loop
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Mode        string `toml:"mode" yaml:"mode"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	NoColor     bool   `toml:"no_color" yaml:"no_color"`
}

// LogConfig holds logging settings. File is optional; when set, records are
// also written there as JSON.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported file extension %q", ext)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the file named by MONKEY_CONFIG, or
// from the first default location that exists. Without any file it returns
// Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"monkey.toml", "monkey.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "monkey", "config.toml"),
			filepath.Join(home, ".config", "monkey", "config.yaml"),
		)
	}
	return paths
}

// Validate reports settings that cannot be acted upon.
func (c *Config) Validate() error {
	switch c.REPL.Mode {
	case ModeTokens, ModeAST:
	default:
		return fmt.Errorf("unknown repl mode %q (want %q or %q)", c.REPL.Mode, ModeTokens, ModeAST)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = ">> "
	}
	if c.REPL.Mode == "" {
		c.REPL.Mode = ModeAST
	}
	if c.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.REPL.HistoryFile = filepath.Join(home, ".monkey_history")
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

func (c *Config) expandEnvVars() {
	c.REPL.HistoryFile = os.ExpandEnv(c.REPL.HistoryFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
