package synth

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrUnsupportedBitDepth is returned by WriteWAV for depths other than 16, 24 or 32.
var ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

const wavFormatPCM = 1

// WriteWAV encodes buf as integer PCM WAV. Samples outside [-1, 1] are clipped.
func WriteWAV(w io.WriteSeeker, buf contracts.SampleBuffer, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	channels := max(1, buf.Channels)

	full := float64(int64(1)<<(bitDepth-1) - 1)
	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		v := math.Max(-1, math.Min(1, float64(s)))
		data[i] = int(math.Round(v * full))
	}

	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, channels, wavFormatPCM)
	err := enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}
	return nil
}
