//go:build !darwin
// +build !darwin

package mididarwin

import (
	"errors"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrNotAvailable is returned by every device operation off macOS.
var ErrNotAvailable = errors.New("CoreMIDI is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient returns a client whose device operations fail with ErrNotAvailable.
func NewMIDIClient(options *contracts.Options) (contracts.ClientMIDI, error) {
	options.Logger.Debug("using dummy CoreMIDI client")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, ErrNotAvailable
}

func (m *dummyMIDIClient) SelectDevice(int) error {
	return ErrNotAvailable
}

func (m *dummyMIDIClient) StartCapture(chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy CoreMIDI client")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}
