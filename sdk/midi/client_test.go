package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/contracts"
)

func TestNewClientUnsupportedOS(t *testing.T) {
	opts, err := applyDefaultOptions(contracts.WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)

	_, err = newClientFor("plan9", &opts)
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestApplyDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions(contracts.WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)

	require.NotNil(t, opts.MIDIEventFilter)
	assert.True(t, opts.MIDIEventFilter.Allows(0x93))
	assert.True(t, opts.MIDIEventFilter.Allows(0x80))
	assert.False(t, opts.MIDIEventFilter.Allows(0xB0))
	assert.Equal(t, "harmony", opts.CoreMIDIConfig.ClientName)

	custom, err := applyDefaultOptions(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithCoreMIDIConfig(contracts.CoreMIDIConfig{ClientName: "keys"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "keys", custom.CoreMIDIConfig.ClientName)
}

func TestApplyDefaultOptionsLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midi.log")
	opts, err := applyDefaultOptions(contracts.WithLogFile(path))
	require.NoError(t, err)
	opts.Logger.Info("midi options ready")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "midi options ready")
}
