package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/leandrodaf/harmony/internal/logger"
	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/midi"
	"github.com/leandrodaf/harmony/sdk/synth"
	"github.com/leandrodaf/harmony/sdk/theory"
)

func main() {
	log := logger.NewZapLogger()
	log.SetLevel(contracts.DebugLevel)

	var chord []theory.Pitch
	for _, token := range []string{"C4", "E4", "G4", "B4"} {
		p, ok := theory.Parse(token)
		if !ok {
			log.Error("Failed to parse note", log.Field().String("token", token))
			return
		}
		chord = append(chord, p)
	}

	retuned := theory.Apply(chord, "just")
	report := theory.Analyze(retuned)
	fmt.Println("Chord:", report.Chord)
	for _, iv := range report.FromRoot {
		fmt.Printf("  %s → %s: %s\n", iv.From, iv.To, iv.Name)
	}
	for _, p := range retuned {
		fmt.Printf("  %s: %.2f Hz\n", p, p.Frequency())
	}

	buf := synth.Render(retuned, 2000, contracts.DefaultSampleRate)
	f, err := os.Create("cmaj7_just.wav")
	if err != nil {
		log.Error("Failed to create WAV file", log.Field().Error("error", err))
		return
	}
	defer f.Close()
	if err := synth.WriteWAV(f, buf, 16); err != nil {
		log.Error("Failed to write WAV file", log.Field().Error("error", err))
		return
	}
	log.Info("Wrote cmaj7_just.wav", log.Field().Duration("duration", buf.Duration()))

	// Play chords on a MIDI keyboard, when one is attached.
	client, err := midi.NewMIDIClient(contracts.WithLogger(log))
	if err != nil {
		log.Warn("MIDI input unavailable", log.Field().Error("error", err))
		return
	}
	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Warn("No MIDI devices found", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = client.SelectDevice(0); err != nil {
		log.Error("Failed to select MIDI device", log.Field().Error("error", err))
		return
	}

	events := make(chan contracts.MIDI, 100)
	tracker := midi.NewChordTracker()
	go func() {
		for event := range events {
			if tracker.Apply(event) && event.IsNoteOn() {
				fmt.Println(tracker.Line(), "→", theory.Analyze(tracker.Pitches()).Chord)
			}
		}
	}()

	client.StartCapture(events)
	defer client.Stop()

	fmt.Println("Play a chord... Press Ctrl+C to exit.")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
