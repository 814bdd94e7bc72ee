// Package synth renders pitch sequences to PCM by additive synthesis: one
// sine per note, summed with equal weights.
package synth

import (
	"math"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/theory"
)

// DefaultAmplitude is the combined peak of all voices. Each of n voices gets
// DefaultAmplitude/n so the sum cannot clip.
const DefaultAmplitude = 0.3

// Renderer renders chords with a fixed sample rate and amplitude ceiling.
type Renderer struct {
	sampleRate int
	amplitude  float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(hz int) Option {
	return func(r *Renderer) {
		r.sampleRate = hz
	}
}

// WithAmplitude sets the combined peak amplitude of all voices.
func WithAmplitude(a float64) Option {
	return func(r *Renderer) {
		r.amplitude = a
	}
}

// NewRenderer creates a renderer. Defaults are 44.1 kHz and DefaultAmplitude.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		sampleRate: contracts.DefaultSampleRate,
		amplitude:  DefaultAmplitude,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// SampleRate returns the configured sample rate.
func (r *Renderer) SampleRate() int {
	return r.sampleRate
}

// Render produces round(sampleRate*durationMs/1000) mono samples of the sum
// of one sine per note. An empty note set renders silence of the same length;
// a negative duration or a non-positive sample rate renders nothing.
func (r *Renderer) Render(notes []theory.Pitch, durationMs int) contracts.SampleBuffer {
	buf := contracts.SampleBuffer{SampleRate: r.sampleRate, Channels: 1}
	if r.sampleRate <= 0 || durationMs <= 0 {
		buf.Samples = []float32{}
		return buf
	}

	total := int(math.Round(float64(r.sampleRate) * float64(durationMs) / 1000))
	buf.Samples = make([]float32, total)
	if len(notes) == 0 {
		return buf
	}

	amp := r.amplitude / float64(max(1, len(notes)))
	steps := make([]float64, len(notes))
	for i, p := range notes {
		steps[i] = 2 * math.Pi * p.Frequency() / float64(r.sampleRate)
	}

	for i := range buf.Samples {
		var sum float64
		for _, step := range steps {
			sum += amp * math.Sin(step*float64(i))
		}
		buf.Samples[i] = float32(sum)
	}
	return buf
}

// Render renders notes for durationMs at sampleRate with DefaultAmplitude.
func Render(notes []theory.Pitch, durationMs, sampleRate int) contracts.SampleBuffer {
	return NewRenderer(WithSampleRate(sampleRate)).Render(notes, durationMs)
}
