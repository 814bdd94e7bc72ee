package midi

import (
	"github.com/leandrodaf/harmony/sdk/contracts"
)

// NewMIDIClient creates a MIDI input client for the current operating system.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.ClientMIDI: An instance of the MIDI client.
//   - error: ErrUnsupportedOS on platforms without a MIDI backend, or the backend's initialization error.
func NewMIDIClient(opts ...contracts.Option) (contracts.ClientMIDI, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
