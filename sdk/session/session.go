// Package session drives the engine one text line at a time: it scans notes
// and a transformation out of the line, analyzes the result, formats the
// report and optionally hands a rendered buffer to the playback sink.
package session

import (
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/remeh/sizedwaitgroup"

	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/synth"
	"github.com/leandrodaf/harmony/sdk/theory"
)

// ErrNoNotes is returned by Play when there is nothing to render.
var ErrNoNotes = errors.New("no notes to play")

// Session evaluates lines and owns the handle to the playback sink. Eval and
// EvalAll are safe for concurrent use; they never touch the sink.
type Session struct {
	logger     contracts.Logger
	sink       contracts.AudioSink
	renderer   *synth.Renderer
	durationMs int
}

// New creates a session. Without WithSink, Play renders but plays nothing.
func New(opts ...contracts.Option) *Session {
	options := applyDefaultOptions(opts...)
	return &Session{
		logger:     options.Logger,
		sink:       options.Sink,
		renderer:   synth.NewRenderer(synth.WithSampleRate(options.SampleRate)),
		durationMs: options.DurationMs,
	}
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
	if options.DurationMs <= 0 {
		options.DurationMs = contracts.DefaultDurationMs
	}
	return *options
}

// Scan splits a line into note tokens and a transformation. Tokens that parse
// as notes are collected in order; the first token that looks like a
// transformation takes the rest of the line as its argument; any other token
// is skipped.
func Scan(line string) (notes []theory.Pitch, transform string) {
	fields := strings.Fields(line)
	for i, tok := range fields {
		if p, ok := theory.Parse(tok); ok {
			notes = append(notes, p)
			continue
		}
		if theory.IsTransform(tok) {
			return notes, strings.Join(fields[i:], " ")
		}
	}
	return notes, ""
}

// Result is the evaluation of one line.
type Result struct {
	Line      string
	Input     []theory.Pitch
	Transform string // empty when the line had none
	Output    []theory.Pitch
	Report    theory.Report
}

// Empty reports whether the line contained no notes.
func (r Result) Empty() bool {
	return len(r.Input) == 0
}

// Eval scans, transforms and analyzes line.
func (s *Session) Eval(line string) Result {
	notes, transform := Scan(line)
	res := Result{Line: line, Input: notes, Transform: transform, Output: notes}
	if len(notes) == 0 {
		return res
	}
	if transform != "" {
		res.Output = theory.Apply(notes, transform)
	}
	res.Report = theory.Analyze(res.Output)

	s.logger.Debug("line evaluated",
		s.logger.Field().Int("notes", len(notes)),
		s.logger.Field().String("transform", transform),
		s.logger.Field().Int("result", len(res.Output)))
	return res
}

// EvalAll evaluates independent lines with at most workers in flight and
// returns the results in input order.
func (s *Session) EvalAll(lines []string, workers int) []Result {
	results := make([]Result, len(lines))
	swg := sizedwaitgroup.New(max(1, workers))
	for i, line := range lines {
		swg.Add()
		go func(i int, line string) {
			defer swg.Done()
			results[i] = s.Eval(line)
		}(i, line)
	}
	swg.Wait()
	return results
}

// Render renders notes with the session's sample rate and duration.
func (s *Session) Render(notes []theory.Pitch) contracts.SampleBuffer {
	return s.renderer.Render(notes, s.durationMs)
}

// Play renders notes and hands the buffer to the sink without waiting for it
// to finish. It is a no-op without a sink.
func (s *Session) Play(notes []theory.Pitch) error {
	if len(notes) == 0 {
		return ErrNoNotes
	}
	buf := s.Render(notes)
	if s.sink == nil {
		return nil
	}

	s.logger.Debug("playing",
		s.logger.Field().Int("voices", len(notes)),
		s.logger.Field().String("duration", durafmt.Parse(buf.Duration()).String()),
		s.logger.Field().String("samples", humanize.Comma(int64(len(buf.Samples)))),
		s.logger.Field().String("size", humanize.Bytes(uint64(len(buf.Samples)*4))))
	return s.sink.Play(buf)
}

// Stop halts whatever the sink is playing.
func (s *Session) Stop() error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Stop()
}

// Close releases the sink.
func (s *Session) Close() error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Close()
}
