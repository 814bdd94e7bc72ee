package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

var keys = []string{
	"HARMONY_LOG_LEVEL", "HARMONY_LOG_FILE", "HARMONY_SAMPLE_RATE", "HARMONY_DURATION_MS",
	"HARMONY_PLAY", "HARMONY_MIDI_DEVICE", "HARMONY_WORKERS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, contracts.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 1000, cfg.DurationMs)
	assert.True(t, cfg.Play)
	assert.Equal(t, -1, cfg.MIDIDevice)
	assert.False(t, cfg.MIDIEnabled())
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HARMONY_LOG_LEVEL", "DEBUG")
	t.Setenv("HARMONY_SAMPLE_RATE", "48000")
	t.Setenv("HARMONY_DURATION_MS", "250")
	t.Setenv("HARMONY_PLAY", "false")
	t.Setenv("HARMONY_MIDI_DEVICE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, contracts.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 250, cfg.DurationMs)
	assert.False(t, cfg.Play)
	assert.True(t, cfg.MIDIEnabled())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := map[string]string{
		"HARMONY_LOG_LEVEL":   "loud",
		"HARMONY_SAMPLE_RATE": "fast",
		"HARMONY_DURATION_MS": "0",
		"HARMONY_PLAY":        "maybe",
		"HARMONY_MIDI_DEVICE": "-2",
		"HARMONY_WORKERS":     "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HARMONY_DURATION_MS=500\nHARMONY_WORKERS=2\n"), 0o600))
	require.NoError(t, godotenv.Load(path))
	t.Cleanup(func() {
		os.Unsetenv("HARMONY_DURATION_MS")
		os.Unsetenv("HARMONY_WORKERS")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.DurationMs)
	assert.Equal(t, 2, cfg.Workers)
}
