package audio

import (
	"errors"
	"fmt"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrAudioUnavailable is returned when the audio context cannot serve the
// requested sample rate.
var ErrAudioUnavailable = errors.New("audio output unavailable")

type ebitenDevice struct {
	ctx *ebitenaudio.Context
}

func (d ebitenDevice) SampleRate() int {
	return d.ctx.SampleRate()
}

func (d ebitenDevice) NewPlayer(pcm []byte) player {
	return d.ctx.NewPlayerFromBytes(pcm)
}

// NewEbitenSink acquires the process-wide ebiten audio context at sampleRate.
// Ebiten allows one context per process, so an existing context is reused and
// must run at the same rate. Ebiten opens the output device asynchronously;
// players created before it is ready start once it is, and a device that never
// comes up leaves them silent.
func NewEbitenSink(sampleRate int, log contracts.Logger) (*Sink, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid sample rate %d", ErrAudioUnavailable, sampleRate)
	}

	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(sampleRate)
	}
	if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("%w: context already running at %d Hz", ErrAudioUnavailable, ctx.SampleRate())
	}

	log.Debug("audio context created",
		log.Field().Int("sampleRate", sampleRate),
		log.Field().Bool("ready", ctx.IsReady()))
	return newSink(ebitenDevice{ctx: ctx}, log), nil
}
