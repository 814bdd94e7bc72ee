// Package audio implements the playback sinks behind contracts.AudioSink.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/leandrodaf/harmony/sdk/contracts"
)

// Sink errors.
var (
	ErrSampleRateMismatch = errors.New("buffer sample rate does not match the audio device")
	ErrSinkClosed         = errors.New("audio sink is closed")
)

// maxPlayers bounds how many buffers may overlap.
const maxPlayers = 32

type player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

type device interface {
	SampleRate() int
	NewPlayer(pcm []byte) player
}

// Sink is the single playback handle. Buffers handed to Play overlap;
// Stop silences all of them.
type Sink struct {
	logger  contracts.Logger
	dev     device
	mu      sync.Mutex
	players map[player]struct{}
	closed  bool
}

func newSink(dev device, log contracts.Logger) *Sink {
	return &Sink{
		logger:  log,
		dev:     dev,
		players: make(map[player]struct{}),
	}
}

// Play converts buf to 16-bit stereo PCM and starts it without waiting.
func (s *Sink) Play(buf contracts.SampleBuffer) error {
	if buf.SampleRate != s.dev.SampleRate() {
		return fmt.Errorf("%w: %d Hz, device runs at %d Hz", ErrSampleRateMismatch, buf.SampleRate, s.dev.SampleRate())
	}
	if len(buf.Samples) == 0 {
		return nil
	}
	pcm := toStereo16(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}

	s.pruneLocked()
	if len(s.players) >= maxPlayers {
		s.logger.Warn("too many overlapping buffers; dropping playback",
			s.logger.Field().Int("active", len(s.players)))
		return nil
	}

	p := s.dev.NewPlayer(pcm)
	s.players[p] = struct{}{}
	p.Play()
	return nil
}

// Stop pauses and releases every active player.
func (s *Sink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for p := range s.players {
		p.Pause()
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(s.players, p)
	}
	return errors.Join(errs...)
}

// Close stops playback; later Play calls fail with ErrSinkClosed.
func (s *Sink) Close() error {
	err := s.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return err
}

// Active returns the number of players that have not been pruned yet.
func (s *Sink) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	return len(s.players)
}

func (s *Sink) pruneLocked() {
	for p := range s.players {
		if !p.IsPlaying() {
			if err := p.Close(); err != nil {
				s.logger.Debug("closing finished player", s.logger.Field().Error("error", err))
			}
			delete(s.players, p)
		}
	}
}

// toStereo16 duplicates each frame's first channel into signed 16-bit little
// endian stereo.
func toStereo16(buf contracts.SampleBuffer) []byte {
	channels := max(1, buf.Channels)
	frames := len(buf.Samples) / channels
	out := make([]byte, 0, frames*4)
	for i := 0; i < frames; i++ {
		v := math.Max(-1, math.Min(1, float64(buf.Samples[i*channels])))
		s := int16(math.Round(v * math.MaxInt16))
		out = append(out, byte(s), byte(s>>8), byte(s), byte(s>>8))
	}
	return out
}
