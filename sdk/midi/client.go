package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/harmony/internal/midi/mididarwin"
	"github.com/leandrodaf/harmony/internal/midi/midiwindows"
	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system is not supported by the MIDI client.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding MIDI client initializers.
var clientInitializers = map[string]func(*contracts.Options) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // macOS (Darwin) MIDI client initializer.
	"windows": midiwindows.NewMIDIClient, // Windows MIDI client initializer.
}

// NewClient initializes a MIDI client based on the current operating system.
// It supports macOS (Darwin) and Windows, returning ErrUnsupportedOS if the OS is unsupported.
func NewClient(opts *contracts.Options) (contracts.ClientMIDI, error) {
	return newClientFor(runtime.GOOS, opts)
}

func newClientFor(goos string, opts *contracts.Options) (contracts.ClientMIDI, error) {
	if initializer, exists := clientInitializers[goos]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}
