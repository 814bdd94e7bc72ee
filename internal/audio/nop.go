package audio

import "github.com/leandrodaf/harmony/sdk/contracts"

type nopSink struct{}

// NopSink returns a sink that accepts buffers and plays nothing. It stands in
// when no device is available so rendering never depends on audio output.
func NopSink() contracts.AudioSink {
	return nopSink{}
}

func (nopSink) Play(contracts.SampleBuffer) error { return nil }
func (nopSink) Stop() error                       { return nil }
func (nopSink) Close() error                      { return nil }
