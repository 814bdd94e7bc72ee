package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

func noteOn(note byte) contracts.MIDI {
	return contracts.MIDI{Command: byte(contracts.NoteOn), Note: note, Velocity: 100}
}

func noteOff(note byte) contracts.MIDI {
	return contracts.MIDI{Command: byte(contracts.NoteOff), Note: note}
}

func TestChordTrackerHoldsKeys(t *testing.T) {
	c := NewChordTracker()
	assert.True(t, c.Apply(noteOn(67)))
	assert.True(t, c.Apply(noteOn(60)))
	assert.True(t, c.Apply(noteOn(64)))
	assert.False(t, c.Apply(noteOn(64)), "repeated NoteOn does not change the chord")

	assert.Equal(t, "C4 E4 G4", c.Line())
	assert.Len(t, c.Pitches(), 3)
}

func TestChordTrackerReleases(t *testing.T) {
	c := NewChordTracker()
	c.Apply(noteOn(60))
	c.Apply(noteOn(64))

	assert.True(t, c.Apply(noteOff(64)))
	assert.False(t, c.Apply(noteOff(64)))
	assert.Equal(t, "C4", c.Line())

	// NoteOn with zero velocity on channel 3 is a release.
	assert.True(t, c.Apply(contracts.MIDI{Command: 0x92, Note: 60, Velocity: 0}))
	assert.Empty(t, c.Line())
}

func TestChordTrackerIgnoresOtherMessages(t *testing.T) {
	c := NewChordTracker()
	assert.False(t, c.Apply(contracts.MIDI{Command: 0xB0, Note: 64, Velocity: 127})) // control change
	assert.False(t, c.Apply(contracts.MIDI{Command: 0x90, Note: 200, Velocity: 1}))
	assert.Empty(t, c.Pitches())

	c.Apply(contracts.MIDI{Command: 0x9F, Note: 61, Velocity: 10})
	assert.Equal(t, "C#4", c.Line())
	c.Reset()
	assert.Empty(t, c.Line())
}
