package contracts

// MIDI represents a MIDI event with a timestamp, command, note, and velocity.
type MIDI struct {
	Timestamp uint64 // Timestamp indicates the time the event occurred.
	Command   byte   // Command is the raw status byte (message type in the high nibble, channel in the low nibble).
	Note      byte   // Note represents the MIDI note number (0-127).
	Velocity  byte   // Velocity indicates the strength of the note being played (0-127).
}

// Kind returns the message type of the event with the channel bits masked off.
func (m MIDI) Kind() MIDICommand {
	return MIDICommand(m.Command & 0xF0)
}

// Channel returns the zero-based MIDI channel of the event.
func (m MIDI) Channel() int {
	return int(m.Command & 0x0F)
}

// IsNoteOn reports whether the event presses a key. A NoteOn with velocity 0 is a release.
func (m MIDI) IsNoteOn() bool {
	return m.Kind() == NoteOn && m.Velocity > 0
}

// IsNoteOff reports whether the event releases a key.
func (m MIDI) IsNoteOff() bool {
	return m.Kind() == NoteOff || (m.Kind() == NoteOn && m.Velocity == 0)
}

// ClientMIDI defines an interface for MIDI client operations.
type ClientMIDI interface {
	Stop() error                         // Stops the MIDI client and releases resources.
	ListDevices() ([]DeviceInfo, error)  // Lists all available MIDI input devices.
	SelectDevice(deviceID int) error     // Selects a MIDI device by its ID for communication.
	StartCapture(eventChannel chan MIDI) // Starts capturing MIDI events and sends them to the specified channel.
}
