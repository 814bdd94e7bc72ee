package theory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMIDIRoundTrip(t *testing.T) {
	for m := MinMIDI; m <= MaxMIDI; m++ {
		p := FromMIDI(m)
		require.Equal(t, m, p.MIDI(), "midi %d", m)
		assert.Zero(t, p.Cents)
	}
}

func TestFromMIDI(t *testing.T) {
	assert.Equal(t, Pitch{PitchClass: 0, Octave: 4}, FromMIDI(60))
	assert.Equal(t, Pitch{PitchClass: 9, Octave: 4}, FromMIDI(69))
	assert.Equal(t, Pitch{PitchClass: 0, Octave: -1}, FromMIDI(0))
	assert.Equal(t, Pitch{PitchClass: 7, Octave: 9}, FromMIDI(127))
	assert.Equal(t, Pitch{PitchClass: 11, Octave: -2}, FromMIDI(-1))
}

func TestNewReducesAndClamps(t *testing.T) {
	assert.Equal(t, 1, New(13, 4).PitchClass)
	assert.Equal(t, 11, New(-1, 4).PitchClass)
	assert.Equal(t, 50.0, NewWithCents(0, 4, 80).Cents)
	assert.Equal(t, -50.0, NewWithCents(0, 4, -120).Cents)
	assert.Equal(t, 12.5, NewWithCents(0, 4, 12.5).Cents)
}

func TestFrequency(t *testing.T) {
	assert.InDelta(t, 440.0, FromMIDI(69).Frequency(), 1e-9)
	assert.InDelta(t, 261.6255653, FromMIDI(60).Frequency(), 1e-6)
	assert.InDelta(t, 880.0, FromMIDI(81).Frequency(), 1e-9)
	assert.InDelta(t, 440*math.Pow(2, 25.0/1200), NewWithCents(9, 4, 25).Frequency(), 1e-9)
}

func TestFromFrequencyConsistency(t *testing.T) {
	for m := MinMIDI; m <= MaxMIDI; m++ {
		p := FromMIDI(m)
		got := FromFrequency(p.Frequency())
		require.Equal(t, p.MIDI(), got.MIDI(), "midi %d", m)
		require.InDelta(t, 0, got.Cents, 1, "midi %d", m)
	}
}

func TestFromFrequencyKeepsCents(t *testing.T) {
	p := NewWithCents(0, 4, 30)
	got := FromFrequency(p.Frequency())
	assert.Equal(t, 60, got.MIDI())
	assert.InDelta(t, 30, got.Cents, 1e-6)
}

func TestFromFrequencyCarriesLargeRemainder(t *testing.T) {
	// 70 cents above A4 is stored as 30 cents below A#4.
	got := FromFrequency(440 * math.Pow(2, 70.0/1200))
	assert.Equal(t, 70, got.MIDI())
	assert.InDelta(t, -30, got.Cents, 1e-6)
}

func TestFromFrequencyClampsRange(t *testing.T) {
	assert.Equal(t, MinMIDI, FromFrequency(0).MIDI())
	assert.Equal(t, MinMIDI, FromFrequency(-10).MIDI())
	assert.Equal(t, MinMIDI, FromFrequency(math.NaN()).MIDI())
	assert.Equal(t, MinMIDI, FromFrequency(1).MIDI())
	assert.Equal(t, MaxMIDI, FromFrequency(1e9).MIDI())
	assert.Equal(t, MaxMIDI, FromFrequency(math.Inf(1)).MIDI())
}

func TestTransposeInverse(t *testing.T) {
	p := NewWithCents(4, 4, 12)
	for n := -64; n <= 63; n++ {
		assert.Equal(t, p, p.Transpose(n).Transpose(-n), "n=%d", n)
	}
}

func TestTransposeClampsAndKeepsCents(t *testing.T) {
	p := NewWithCents(0, 9, -20) // MIDI 120
	up := p.Transpose(20)
	assert.Equal(t, MaxMIDI, up.MIDI())
	assert.Equal(t, -20.0, up.Cents)

	down := FromMIDI(5).Transpose(-20)
	assert.Equal(t, MinMIDI, down.MIDI())

	c4 := New(0, 4)
	assert.Equal(t, MaxMIDI, c4.Transpose(math.MaxInt).MIDI())
	assert.Equal(t, MinMIDI, c4.Transpose(math.MinInt).MIDI())
	assert.Equal(t, MaxMIDI, c4.TransposeCents(1e300).MIDI())
	assert.Equal(t, MinMIDI, c4.TransposeCents(-1e300).MIDI())
	assert.Equal(t, c4, c4.TransposeCents(math.NaN()))
}

func TestTransposeCents(t *testing.T) {
	c4 := New(0, 4)
	tests := []struct {
		name      string
		start     Pitch
		add       float64
		wantMIDI  int
		wantCents float64
	}{
		{"small offset", c4, 25, 60, 25},
		{"remainder above 50 is clamped", c4, 60, 60, 50},
		{"carries a whole semitone", c4, 150, 61, 50},
		{"exact hundred", c4, 100, 61, 0},
		{"negative total borrows a semitone", c4, -30, 59, 50},
		{"negative hundred", c4, -100, 59, 0},
		{"adds to existing cents", NewWithCents(0, 4, 20), 10, 60, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.TransposeCents(tt.add)
			assert.Equal(t, tt.wantMIDI, got.MIDI())
			assert.InDelta(t, tt.wantCents, got.Cents, 1e-9)
		})
	}
}

func TestMultiplyFrequency(t *testing.T) {
	a4 := FromMIDI(69)
	assert.Equal(t, 81, a4.MultiplyFrequency(2).MIDI())
	assert.Equal(t, 57, a4.MultiplyFrequency(0.5).MIDI())

	fifth := a4.MultiplyFrequency(1.5)
	assert.Equal(t, 76, fifth.MIDI())
	assert.InDelta(t, 1.955, fifth.Cents, 0.01)
}

func TestIntervalTo(t *testing.T) {
	c4, g4 := FromMIDI(60), FromMIDI(67)
	assert.Equal(t, 7, c4.IntervalTo(g4))
	assert.Equal(t, -7, g4.IntervalTo(c4))
	assert.Equal(t, 0, NewWithCents(0, 4, 40).IntervalTo(c4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "C4", New(0, 4).String())
	assert.Equal(t, "C#-1", FromMIDI(1).String())
	assert.Equal(t, "C4(+25¢)", NewWithCents(0, 4, 25).String())
	assert.Equal(t, "E5(-14¢)", NewWithCents(4, 5, -14).String())
	assert.Equal(t, "A4", NewWithCents(9, 4, 0.05).String())
}
