package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/leandrodaf/harmony/internal/config"
	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/session"
	"github.com/leandrodaf/harmony/sdk/synth"
)

const helpText = `notes:      C4 C#4 CS4 A-1 C4+25 E5-14 (octave defaults to 4)
transforms: +n -n (semitones)  *r (frequency ratio)  50c 25ct (cents)
            inv  reverse  spread  just  edo<n>
commands:   stop  wav <file> <notes...>  help  quit`

type app struct {
	cfg  *config.Config
	log  contracts.Logger
	sess *session.Session
	out  *printer
}

// printer serializes writes from the REPL and the MIDI listener.
type printer struct {
	mu sync.Mutex
	w  io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Print(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, s)
}

func (p *printer) Println(s string) {
	p.Print(s + "\n")
}

func (a *app) runREPL(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := readLines(ctx, r)

	a.out.Print("> ")
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case line := <-lines:
			if quit := a.handle(line); quit {
				return nil
			}
			a.out.Print("> ")
		}
	}
}

// readLines scans r on its own goroutine so that callers can stop waiting on
// input when ctx is cancelled. errc receives the scan error, or nil at EOF,
// after the last line has been delivered.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// handle runs one REPL line and reports whether the session should end.
func (a *app) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		a.out.Println(helpText)
		return false
	case "stop":
		if err := a.sess.Stop(); err != nil {
			a.log.Warn("stopping playback", a.log.Field().Error("error", err))
		}
		return false
	case "wav":
		if len(fields) < 3 {
			a.out.Println("usage: wav <file> <notes...>")
			return false
		}
		a.exportWAV(fields[1], strings.Join(fields[2:], " "))
		return false
	}

	a.evaluate(line)
	return false
}

func (a *app) evaluate(line string) {
	res := a.sess.Eval(line)
	if res.Empty() {
		return
	}
	a.out.Print(res.String())

	if !a.cfg.Play {
		return
	}
	if err := a.sess.Play(res.Output); err != nil {
		a.log.Warn("playback failed", a.log.Field().Error("error", err))
	}
}

func (a *app) exportWAV(path, line string) {
	res := a.sess.Eval(line)
	if res.Empty() {
		a.out.Println("no notes to export")
		return
	}
	buf := a.sess.Render(res.Output)

	f, err := os.Create(path)
	if err != nil {
		a.log.Error("creating WAV file", a.log.Field().String("path", path), a.log.Field().Error("error", err))
		return
	}
	defer f.Close()

	if err := synth.WriteWAV(f, buf, 16); err != nil {
		a.log.Error("writing WAV file", a.log.Field().String("path", path), a.log.Field().Error("error", err))
		return
	}
	a.out.Println(fmt.Sprintf("wrote %s (%s samples)", path, humanize.Comma(int64(len(buf.Samples)))))
}

// runBatch evaluates piped input without playback. Lines are independent, so
// they are analyzed in parallel and printed in input order.
func (a *app) runBatch(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	in, errc := readLines(ctx, r)

	var lines []string
	for done := false; !done; {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if err != nil {
				return err
			}
			done = true
		case line := <-in:
			lines = append(lines, line)
		}
	}

	for _, res := range a.sess.EvalAll(lines, a.cfg.Workers) {
		a.out.Print(res.String())
	}
	a.log.Debug("batch finished", a.log.Field().Int("lines", len(lines)))
	return nil
}
