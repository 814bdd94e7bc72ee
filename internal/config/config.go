package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrInvalidValue is wrapped by Load for environment values that do not parse.
var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the process configuration for the harmony REPL.
type Config struct {
	LogLevel contracts.LogLevel
	LogFile  string // empty logs to stderr

	SampleRate int
	DurationMs int
	Play       bool // render and play every evaluated line

	MIDIDevice int // -1 disables MIDI input
	Workers    int // parallel evaluations in batch mode
}

// Load reads the configuration from the environment. Unset variables take
// their defaults; set but malformed ones are an error.
func Load() (*Config, error) {
	cfg := &Config{LogFile: getEnv("HARMONY_LOG_FILE", "")}

	level, ok := contracts.ParseLogLevel(getEnv("HARMONY_LOG_LEVEL", "info"))
	if !ok {
		return nil, fmt.Errorf("%w: HARMONY_LOG_LEVEL=%q", ErrInvalidValue, os.Getenv("HARMONY_LOG_LEVEL"))
	}
	cfg.LogLevel = level

	var err error
	if cfg.SampleRate, err = getEnvInt("HARMONY_SAMPLE_RATE", contracts.DefaultSampleRate, 1); err != nil {
		return nil, err
	}
	if cfg.DurationMs, err = getEnvInt("HARMONY_DURATION_MS", contracts.DefaultDurationMs, 1); err != nil {
		return nil, err
	}
	if cfg.MIDIDevice, err = getEnvInt("HARMONY_MIDI_DEVICE", -1, -1); err != nil {
		return nil, err
	}
	if cfg.Workers, err = getEnvInt("HARMONY_WORKERS", 4, 1); err != nil {
		return nil, err
	}
	if cfg.Play, err = getEnvBool("HARMONY_PLAY", true); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MIDIEnabled reports whether a MIDI input device was configured.
func (c *Config) MIDIEnabled() bool {
	return c.MIDIDevice >= 0
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue, minValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minValue {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, raw)
	}
	return b, nil
}
