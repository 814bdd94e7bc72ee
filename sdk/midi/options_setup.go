package midi

import (
	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/contracts"
)

// applyDefaultOptions sets default values for Options if not explicitly provided.
// By default only NoteOn and NoteOff reach the caller, which is all a
// ChordTracker needs.
func applyDefaultOptions(opts ...contracts.Option) (contracts.Options, error) {
	options := &contracts.Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
		options.Logger.SetLevel(options.LogLevel)
	}
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	if options.MIDIEventFilter == nil {
		options.MIDIEventFilter = &contracts.MIDIEventFilter{
			Commands: []contracts.MIDICommand{contracts.NoteOn, contracts.NoteOff},
		}
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: "harmony"}
	}

	return *options, nil
}
