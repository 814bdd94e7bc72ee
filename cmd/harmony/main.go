package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/leandrodaf/harmony/internal/config"
	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/audio"
	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/session"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "harmony: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewZapLogger()
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		log.SetDestination(contracts.FileLog, cfg.LogFile)
	}
	if envErr != nil {
		log.Debug("no .env file found, using environment variables")
	}

	sink := audio.NopSink()
	if cfg.Play {
		if s, err := audio.NewSink(contracts.WithLogger(log), contracts.WithSampleRate(cfg.SampleRate)); err == nil {
			sink = s
		} else {
			log.Warn("continuing without sound", log.Field().Error("error", err))
		}
	}

	sess := session.New(
		contracts.WithLogger(log),
		contracts.WithSink(sink),
		contracts.WithSampleRate(cfg.SampleRate),
		contracts.WithDurationMs(cfg.DurationMs),
	)
	defer func() {
		if err := sess.Close(); err != nil {
			log.Error("closing audio sink", log.Field().Error("error", err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	out := newPrinter(os.Stdout)
	a := &app{cfg: cfg, log: log, sess: sess, out: out}

	if cfg.MIDIEnabled() {
		stop, err := a.listenMIDI(ctx)
		if err != nil {
			log.Error("MIDI input disabled", log.Field().Error("error", err))
		} else {
			defer stop()
		}
	}

	if isInteractive(os.Stdin) {
		out.Println("harmony ready. Type notes (C4 E4 G4), an optional transform (+2, inv, just, edo19), or 'help'.")
		err = a.runREPL(ctx, os.Stdin)
	} else {
		err = a.runBatch(ctx, os.Stdin)
	}
	if err != nil {
		log.Error("reading input", log.Field().Error("error", err))
		os.Exit(1)
	}
}

func isInteractive(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
