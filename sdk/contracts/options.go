package contracts

// MIDICommand represents the types of MIDI commands for event filtering.
type MIDICommand byte

const (
	// NoteOn is the MIDI command for a Note On event (0x90).
	NoteOn MIDICommand = 0x90
	// NoteOff is the MIDI command for a Note Off event (0x80).
	NoteOff MIDICommand = 0x80
)

// MIDIEventFilter allows users to specify which MIDI commands to capture.
type MIDIEventFilter struct {
	Commands []MIDICommand // List of MIDI commands to filter.
}

// Allows reports whether a raw status byte passes the filter. Channel bits are
// ignored, so NoteOn matches 0x90 through 0x9F. A nil filter allows everything.
func (f *MIDIEventFilter) Allows(status byte) bool {
	if f == nil {
		return true
	}
	kind := MIDICommand(status & 0xF0)
	for _, allowed := range f.Commands {
		if kind == allowed {
			return true
		}
	}
	return false
}

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
}

// Defaults shared by the factories when an option is not provided.
const (
	DefaultSampleRate = 44100
	DefaultDurationMs = 1000
)

// Options collects the configuration accepted by the harmony factories
// (session, audio sink and MIDI client). Each factory reads the fields it needs.
type Options struct {
	Logger          Logger           // Logger for logging events and errors.
	LogLevel        LogLevel         // Level of logging to use.
	LogFilePath     string           // File path for logging if file logging is enabled.
	MIDIEventFilter *MIDIEventFilter // Optional filter for MIDI events to capture.
	CoreMIDIConfig  *CoreMIDIConfig  // Configuration specific to CoreMIDI.
	SampleRate      int              // Sample rate used to render and play buffers.
	DurationMs      int              // Length of rendered chords in milliseconds.
	Sink            AudioSink        // Playback sink; nil disables playback.
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level LogLevel) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFile directs logging to the file at path.
func WithLogFile(path string) Option {
	return func(opts *Options) {
		opts.LogFilePath = path
	}
}

// WithMIDIEventFilter sets the MIDI event filter for the MIDI client.
func WithMIDIEventFilter(filter MIDIEventFilter) Option {
	return func(opts *Options) {
		opts.MIDIEventFilter = &filter
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI client.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *Options) {
		opts.CoreMIDIConfig = &config
	}
}

// WithSampleRate sets the sample rate in Hz for rendering and playback.
func WithSampleRate(rate int) Option {
	return func(opts *Options) {
		opts.SampleRate = rate
	}
}

// WithDurationMs sets how long each rendered chord lasts.
func WithDurationMs(ms int) Option {
	return func(opts *Options) {
		opts.DurationMs = ms
	}
}

// WithSink sets the playback sink used by the session.
func WithSink(sink AudioSink) Option {
	return func(opts *Options) {
		opts.Sink = sink
	}
}
