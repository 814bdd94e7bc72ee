// Package audio builds the playback sink used by a session.
package audio

import (
	internalaudio "github.com/leandrodaf/harmony/internal/audio"
	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/contracts"
)

// ErrAudioUnavailable is returned by NewSink when the audio context cannot serve
// the requested sample rate.
var ErrAudioUnavailable = internalaudio.ErrAudioUnavailable

// NewSink opens the default audio output at the configured sample rate
// (contracts.DefaultSampleRate unless WithSampleRate is given).
//
// Callers that can live without sound should fall back to NopSink on error:
//
//	sink, err := audio.NewSink(contracts.WithSampleRate(44100))
//	if err != nil {
//		sink = audio.NopSink()
//	}
func NewSink(opts ...contracts.Option) (contracts.AudioSink, error) {
	options := applyDefaultOptions(opts...)
	sink, err := internalaudio.NewEbitenSink(options.SampleRate, options.Logger)
	if err != nil {
		options.Logger.Warn("audio output unavailable", options.Logger.Field().Error("error", err))
		return nil, err
	}
	return sink, nil
}

// NopSink returns a sink that silently discards buffers.
func NopSink() contracts.AudioSink {
	return internalaudio.NopSink()
}

func applyDefaultOptions(opts ...contracts.Option) contracts.Options {
	options := &contracts.Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
		options.Logger.SetLevel(options.LogLevel)
	}
	if options.LogFilePath != "" {
		options.Logger.SetDestination(contracts.FileLog, options.LogFilePath)
	}
	if options.SampleRate <= 0 {
		options.SampleRate = contracts.DefaultSampleRate
	}
	return *options
}
