// Package config loads editor settings from a TOML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ionut-t/gokilo/core"
	"github.com/ionut-t/gokilo/highlighter"
)

var (
	// ErrValidationFailed indicates a setting is out of range.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidEnv indicates an environment override could not be parsed.
	ErrInvalidEnv = errors.New("invalid environment override")
)

// Environment variables applied on top of the file.
const (
	EnvTabStop        = "GOKILO_TAB_STOP"
	EnvQuitTimes      = "GOKILO_QUIT_TIMES"
	EnvMessageTimeout = "GOKILO_MESSAGE_TIMEOUT"
	EnvChromaFallback = "GOKILO_CHROMA_FALLBACK"
	EnvLogFile        = "GOKILO_LOG_FILE"
)

const maxTabStop = 16

type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

type EditorConfig struct {
	// TabStop is the column multiple a tab expands to.
	TabStop int `toml:"tab_stop"`

	// QuitTimes is the number of extra Ctrl-Q presses needed to leave a
	// modified buffer.
	QuitTimes int `toml:"quit_times"`

	// MessageTimeout is how long a status message stays visible, in
	// time.ParseDuration syntax.
	MessageTimeout string `toml:"message_timeout"`

	// ChromaFallback highlights file types missing from the built-in table
	// with chroma lexers.
	ChromaFallback bool `toml:"chroma_fallback"`
}

type LogConfig struct {
	// File receives log output. Empty discards it.
	File string `toml:"file"`
}

// Default returns the settings used when no file or override is present.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabStop:        core.DefaultTabStop,
			QuitTimes:      1,
			MessageTimeout: "5s",
		},
	}
}

// DefaultPath returns gokilo/config.toml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "gokilo", "config.toml"), nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := cfg.Decode(bytes.NewReader(data)); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode reads TOML from r into c. Keys absent from r keep their current
// value; unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(c)
}

// ApplyEnv overrides settings from the GOKILO_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTabStop); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTabStop, v, ErrInvalidEnv)
		}
		c.Editor.TabStop = n
	}
	if v, ok := lookup(EnvQuitTimes); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvQuitTimes, v, ErrInvalidEnv)
		}
		c.Editor.QuitTimes = n
	}
	if v, ok := lookup(EnvMessageTimeout); ok {
		c.Editor.MessageTimeout = v
	}
	if v, ok := lookup(EnvChromaFallback); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvChromaFallback, v, ErrInvalidEnv)
		}
		c.Editor.ChromaFallback = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}
	return nil
}

// Validate checks every setting against its allowed range.
func (c Config) Validate() error {
	if c.Editor.TabStop < 1 || c.Editor.TabStop > maxTabStop {
		return fmt.Errorf("editor.tab_stop %d not in 1..%d: %w", c.Editor.TabStop, maxTabStop, ErrValidationFailed)
	}
	if c.Editor.QuitTimes < 0 {
		return fmt.Errorf("editor.quit_times %d is negative: %w", c.Editor.QuitTimes, ErrValidationFailed)
	}
	if _, err := c.messageTimeout(); err != nil {
		return err
	}
	return nil
}

func (c Config) messageTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Editor.MessageTimeout)
	if err != nil {
		return 0, fmt.Errorf("editor.message_timeout %q: %w", c.Editor.MessageTimeout, errors.Join(ErrValidationFailed, err))
	}
	if d <= 0 {
		return 0, fmt.Errorf("editor.message_timeout %q must be positive: %w", c.Editor.MessageTimeout, ErrValidationFailed)
	}
	return d, nil
}

// EditorOptions converts a validated Config into core options using the
// built-in syntax table.
func (c Config) EditorOptions() core.Options {
	opts := core.DefaultOptions()
	opts.TabStop = c.Editor.TabStop
	opts.QuitTimes = c.Editor.QuitTimes
	opts.ChromaFallback = c.Editor.ChromaFallback
	opts.Syntax = highlighter.DefaultTable()
	if d, err := c.messageTimeout(); err == nil {
		opts.MessageTimeout = d
	}
	return opts
}
