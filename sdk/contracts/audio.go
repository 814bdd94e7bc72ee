package contracts

import (
	"math"
	"time"
)

// SampleBuffer is a finished block of 32-bit float PCM. Samples are
// interleaved when Channels > 1; the synthesizer always produces mono.
type SampleBuffer struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames in the buffer.
func (b SampleBuffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playback length of the buffer.
func (b SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Peak returns the largest absolute sample value.
func (b SampleBuffer) Peak() float64 {
	peak := 0.0
	for _, s := range b.Samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}
	return peak
}

// AudioSink plays finished sample buffers. Play hands a buffer off and returns
// without waiting for it to finish; overlapping buffers are mixed. Stop halts
// everything currently playing.
type AudioSink interface {
	Play(buf SampleBuffer) error
	Stop() error
	Close() error
}
