package midi

import (
	"strings"
	"sync"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/theory"
)

// ChordTracker keeps the set of keys currently held on a MIDI input.
type ChordTracker struct {
	mu   sync.Mutex
	held map[byte]struct{}
}

// NewChordTracker returns an empty tracker.
func NewChordTracker() *ChordTracker {
	return &ChordTracker{held: make(map[byte]struct{})}
}

// Apply updates the held set and reports whether it changed. NoteOn with
// velocity 0 releases the key; other messages are ignored.
func (c *ChordTracker) Apply(event contracts.MIDI) bool {
	if event.Note > theory.MaxMIDI {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, isHeld := c.held[event.Note]
	switch {
	case event.IsNoteOn() && !isHeld:
		c.held[event.Note] = struct{}{}
		return true
	case event.IsNoteOff() && isHeld:
		delete(c.held, event.Note)
		return true
	}
	return false
}

// Pitches returns the held keys in ascending order.
func (c *ChordTracker) Pitches() []theory.Pitch {
	c.mu.Lock()
	notes := make([]theory.Pitch, 0, len(c.held))
	for note := range c.held {
		notes = append(notes, theory.FromMIDI(int(note)))
	}
	c.mu.Unlock()
	return theory.SortByMIDI(notes)
}

// Line renders the held keys as note tokens, e.g. "C4 E4 G4", so they can be
// evaluated exactly like typed input.
func (c *ChordTracker) Line() string {
	notes := c.Pitches()
	tokens := make([]string, len(notes))
	for i, p := range notes {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, " ")
}

// Reset releases every key.
func (c *ChordTracker) Reset() {
	c.mu.Lock()
	clear(c.held)
	c.mu.Unlock()
}
