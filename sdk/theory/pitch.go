package theory

import (
	"fmt"
	"math"
)

const (
	// A4Frequency is the tuning reference in Hz.
	A4Frequency = 440.0
	// A4MIDI is the MIDI number of the tuning reference.
	A4MIDI = 69

	// MinMIDI and MaxMIDI bound every pitch this package constructs.
	MinMIDI = 0
	MaxMIDI = 127

	// MaxCents is the largest deviation a Pitch stores in either direction.
	MaxCents = 50.0
)

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Pitch is a pitch class within an octave plus a cents deviation.
// Values are immutable; every operation returns a new Pitch.
type Pitch struct {
	PitchClass int     // 0-11, C=0
	Octave     int     // scientific pitch notation, A4 = 440 Hz
	Cents      float64 // -50..50
}

// New returns the pitch with the given class and octave and no cents offset.
func New(pitchClass, octave int) Pitch {
	return Pitch{PitchClass: mod(pitchClass, 12), Octave: octave}
}

// NewWithCents is New with a cents deviation clamped to [-50, 50].
func NewWithCents(pitchClass, octave int, cents float64) Pitch {
	p := New(pitchClass, octave)
	p.Cents = clampCents(cents)
	return p
}

// FromMIDI converts a MIDI note number.
func FromMIDI(midi int) Pitch {
	return Pitch{PitchClass: mod(midi, 12), Octave: floorDiv(midi, 12) - 1}
}

// FromFrequency returns the pitch nearest below hz with the remainder kept as
// cents. A remainder above 50 cents is carried into the next semitone so the
// stored cents stay in range. The result is clamped to [MinMIDI, MaxMIDI];
// non-positive frequencies map to MinMIDI.
func FromFrequency(hz float64) Pitch {
	switch {
	case math.IsNaN(hz) || hz <= 0:
		return FromMIDI(MinMIDI)
	case math.IsInf(hz, 1):
		return NewWithCents(FromMIDI(MaxMIDI).PitchClass, FromMIDI(MaxMIDI).Octave, MaxCents)
	}

	midiFloat := A4MIDI + 12*math.Log2(hz/A4Frequency)
	midi := math.Floor(midiFloat)
	cents := (midiFloat - midi) * 100
	if cents > MaxCents {
		midi++
		cents -= 100
	}

	switch {
	case midi < MinMIDI:
		midi, cents = MinMIDI, -MaxCents
	case midi > MaxMIDI:
		midi, cents = MaxMIDI, MaxCents
	}

	p := FromMIDI(int(midi))
	p.Cents = clampCents(cents)
	return p
}

// MIDI returns the MIDI note number, ignoring cents.
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + p.PitchClass
}

// Frequency returns the pitch in Hz including its cents deviation.
func (p Pitch) Frequency() float64 {
	midiFloat := float64(p.MIDI()) + p.Cents/100
	return A4Frequency * math.Pow(2, (midiFloat-A4MIDI)/12)
}

// Transpose moves the pitch by n semitones, clamped to the MIDI range.
// The cents deviation is kept.
func (p Pitch) Transpose(n int) Pitch {
	// saturate first so the sum below cannot overflow
	n = max(-MaxMIDI, min(MaxMIDI, n))
	midi := p.MIDI() + n
	midi = max(MinMIDI, min(MaxMIDI, midi))
	out := FromMIDI(midi)
	out.Cents = p.Cents
	return out
}

// TransposeCents adds c cents. Whole hundreds of the new total are carried
// into a semitone transposition and the remainder is clamped to [-50, 50].
func (p Pitch) TransposeCents(c float64) Pitch {
	total := p.Cents + c
	if math.IsNaN(total) {
		return p
	}
	extra := math.Floor(total / 100)
	rest := total - extra*100

	out := p.Transpose(int(math.Max(-MaxMIDI, math.Min(MaxMIDI, extra))))
	out.Cents = clampCents(rest)
	return out
}

// MultiplyFrequency scales the frequency by ratio and re-derives the pitch.
func (p Pitch) MultiplyFrequency(ratio float64) Pitch {
	return FromFrequency(p.Frequency() * ratio)
}

// IntervalTo returns the signed semitone distance from p to other. Cents are ignored.
func (p Pitch) IntervalTo(other Pitch) int {
	return other.MIDI() - p.MIDI()
}

// Name returns the sharp spelling of the pitch class, e.g. "F#".
func (p Pitch) Name() string {
	return pitchClassNames[mod(p.PitchClass, 12)]
}

// HasCents reports whether the deviation is large enough to show.
func (p Pitch) HasCents() bool {
	return math.Abs(p.Cents) >= 0.1
}

// String renders the pitch as "C4", or "C4(+25¢)" when it carries cents.
func (p Pitch) String() string {
	if !p.HasCents() {
		return fmt.Sprintf("%s%d", p.Name(), p.Octave)
	}
	return fmt.Sprintf("%s%d(%+.0f¢)", p.Name(), p.Octave, p.Cents)
}

func clampCents(c float64) float64 {
	if math.IsNaN(c) {
		return 0
	}
	return math.Max(-MaxCents, math.Min(MaxCents, c))
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
