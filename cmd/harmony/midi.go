package main

import (
	"context"
	"fmt"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/leandrodaf/harmony/sdk/midi"
)

// listenMIDI connects to the configured MIDI input and evaluates the held
// chord every time a key is pressed. The returned func stops the client.
func (a *app) listenMIDI(ctx context.Context) (func(), error) {
	client, err := midi.NewMIDIClient(contracts.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	devices, err := client.ListDevices()
	if err != nil {
		return nil, err
	}
	if a.cfg.MIDIDevice >= len(devices) {
		return nil, fmt.Errorf("MIDI device %d not found, %d available", a.cfg.MIDIDevice, len(devices))
	}
	if err := client.SelectDevice(a.cfg.MIDIDevice); err != nil {
		return nil, err
	}
	a.log.Info("listening for chords", a.log.Field().String("device", devices[a.cfg.MIDIDevice].String()))

	events := make(chan contracts.MIDI, 128)
	tracker := midi.NewChordTracker()
	client.StartCapture(events)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				if !tracker.Apply(ev) || !ev.IsNoteOn() {
					continue
				}
				a.evaluate(tracker.Line())
			}
		}
	}()

	return func() {
		cancel()
		if err := client.Stop(); err != nil {
			a.log.Warn("stopping MIDI client", a.log.Field().Error("error", err))
		}
		<-done
	}, nil
}
