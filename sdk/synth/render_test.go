package synth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/harmony/sdk/theory"
)

func TestRenderSingleNote(t *testing.T) {
	buf := Render([]theory.Pitch{theory.FromMIDI(60)}, 1000, 44100)
	require.Len(t, buf.Samples, 44100)
	assert.Equal(t, 44100, buf.SampleRate)
	assert.Equal(t, 1, buf.Channels)
	assert.InDelta(t, 0, buf.Samples[0], 1e-9)
	assert.LessOrEqual(t, buf.Peak(), 0.3+1e-6)
	assert.Greater(t, buf.Peak(), 0.29)
}

func TestRenderLengthIsRounded(t *testing.T) {
	buf := Render([]theory.Pitch{theory.FromMIDI(69)}, 10, 44100)
	assert.Len(t, buf.Samples, 441)

	buf = Render([]theory.Pitch{theory.FromMIDI(69)}, 1, 22050)
	assert.Len(t, buf.Samples, 22) // 22.05
}

func TestRenderEmptyIsSilence(t *testing.T) {
	buf := Render(nil, 500, 8000)
	require.Len(t, buf.Samples, 4000)
	assert.Zero(t, buf.Peak())
}

func TestRenderDegenerateArguments(t *testing.T) {
	notes := []theory.Pitch{theory.FromMIDI(60)}
	assert.Empty(t, Render(notes, -5, 44100).Samples)
	assert.Empty(t, Render(notes, 0, 44100).Samples)
	assert.Empty(t, Render(notes, 100, 0).Samples)
}

func TestRenderNormalizesByVoiceCount(t *testing.T) {
	// Four identical voices add up to exactly one voice at the full ceiling.
	a4 := theory.FromMIDI(69)
	one := Render([]theory.Pitch{a4}, 50, 48000)
	four := Render([]theory.Pitch{a4, a4, a4, a4}, 50, 48000)
	require.Len(t, four.Samples, len(one.Samples))
	for i := range one.Samples {
		require.InDelta(t, one.Samples[i], four.Samples[i], 1e-6, "sample %d", i)
	}
}

func TestRenderChordStaysBelowCeiling(t *testing.T) {
	var notes []theory.Pitch
	for _, tok := range []string{"C4", "E4", "G4", "B4", "D5"} {
		p, ok := theory.Parse(tok)
		require.True(t, ok)
		notes = append(notes, p)
	}
	buf := Render(notes, 1000, 44100)
	assert.LessOrEqual(t, buf.Peak(), 0.3+1e-6)
}

func TestRenderMatchesSine(t *testing.T) {
	a4 := theory.FromMIDI(69)
	buf := Render([]theory.Pitch{a4}, 20, 8000)
	for _, i := range []int{1, 7, 33, 101} {
		want := 0.3 * math.Sin(2*math.Pi*440*float64(i)/8000)
		assert.InDelta(t, want, buf.Samples[i], 1e-6, "sample %d", i)
	}
}

func TestRendererOptions(t *testing.T) {
	r := NewRenderer(WithSampleRate(1000), WithAmplitude(1), nil)
	assert.Equal(t, 1000, r.SampleRate())

	// 250 Hz at 1 kHz: 0, 1, 0, -1
	p := theory.FromFrequency(250)
	buf := r.Render([]theory.Pitch{p}, 4)
	require.Len(t, buf.Samples, 4)
	assert.InDelta(t, 0, buf.Samples[0], 1e-6)
	assert.InDelta(t, 1, buf.Samples[1], 1e-6)
	assert.InDelta(t, 0, buf.Samples[2], 1e-6)
	assert.InDelta(t, -1, buf.Samples[3], 1e-6)
	assert.Equal(t, 4*time.Millisecond, buf.Duration())
}
