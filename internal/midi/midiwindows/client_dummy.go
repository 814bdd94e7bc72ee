//go:build !windows
// +build !windows

package midiwindows

import (
	"errors"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrNotAvailable is returned by every device operation off Windows.
var ErrNotAvailable = errors.New("WinMM MIDI is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a client whose device operations fail with ErrNotAvailable.
func NewMIDIClient(options *contracts.Options) (contracts.ClientMIDI, error) {
	options.Logger.Debug("using dummy WinMM client")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

// ListDevices always fails with ErrNotAvailable.
func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, ErrNotAvailable
}

// SelectDevice always fails with ErrNotAvailable.
func (m *dummyMIDIClient) SelectDevice(int) error {
	return ErrNotAvailable
}

// StartCapture only logs; no events are ever delivered.
func (m *dummyMIDIClient) StartCapture(chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy WinMM client")
}

// Stop is a no-op.
func (m *dummyMIDIClient) Stop() error {
	return nil
}
