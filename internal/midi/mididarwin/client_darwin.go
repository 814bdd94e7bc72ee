//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices        = errors.New("no MIDI devices found")
	ErrInvalidMIDIDevice    = errors.New("invalid MIDI device")
	ErrMIDIConnectionError  = errors.New("error connecting to MIDI device")
	ErrCreateInputPort      = errors.New("error creating input port")
	ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// ClientMid reads note events from a CoreMIDI source so that chords played on
// a keyboard can be analyzed like typed lines.
type ClientMid struct {
	logger          contracts.Logger
	eventChannel    atomic.Value // chan contracts.MIDI
	client          coremidi.Client
	inputPort       coremidi.InputPort
	portConn        internalPortConnection
	midiEventFilter *contracts.MIDIEventFilter
	mu              sync.Mutex
	capturing       bool
	wg              sync.WaitGroup // in-flight packet callbacks
	stopOnce        sync.Once
}

// NewMIDIClient creates a CoreMIDI client named after options.CoreMIDIConfig.
func NewMIDIClient(options *contracts.Options) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Debug("CoreMIDI client created",
		options.Logger.Field().String("name", options.CoreMIDIConfig.ClientName))

	return &ClientMid{
		logger:          options.Logger,
		client:          client,
		midiEventFilter: options.MIDIEventFilter,
	}, nil
}

// ListDevices returns the available CoreMIDI sources.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		entity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice connects to source deviceID, dropping any previous connection.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	if deviceID < 0 || deviceID >= len(sources) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidMIDIDevice, deviceID, len(sources))
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[deviceID]
	m.inputPort, err = coremidi.NewInputPort(m.client, "harmony input", m.handlePacket)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device connected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", source.Name()))
	return nil
}

// handlePacket splits a CoreMIDI packet into three-byte channel messages.
// Running status is not used by CoreMIDI sources, so every message starts
// with a status byte.
func (m *ClientMid) handlePacket(_ coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	eventChannel, _ := m.eventChannel.Load().(chan contracts.MIDI)
	if eventChannel == nil {
		return
	}

	data := packet.Data
	if len(data) < 3 {
		m.logger.Debug(ErrIncompleteMIDIPacket.Error(), m.logger.Field().Int("length", len(data)))
		return
	}

	now := uint64(time.Now().UTC().UnixNano())
	for len(data) >= 3 {
		if data[0]&0x80 == 0 {
			data = data[1:]
			continue
		}
		event := contracts.MIDI{
			Timestamp: now,
			Command:   data[0],
			Note:      data[1],
			Velocity:  data[2],
		}
		data = data[3:]

		if !m.midiEventFilter.Allows(event.Command) {
			continue
		}
		select {
		case eventChannel <- event:
		default:
			m.logger.Warn("event buffer full; dropping MIDI event",
				m.logger.Field().Uint8("note", event.Note))
		}
	}
}

// StartCapture starts delivering events to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if m.capturing {
		m.logger.Warn("capture already started; switching channel")
	}

	m.eventChannel.Store(eventChannel)
	m.capturing = true
	m.logger.Info("MIDI capture started")
}

// Stop disconnects from the device and waits for in-flight callbacks.
// It is safe to call more than once.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.portConn != nil {
			m.portConn.Disconnect()
			m.portConn = nil
		}
		if m.capturing {
			m.capturing = false
			// a fresh channel nobody reads keeps late callbacks from touching the caller's channel
			m.eventChannel.Store(make(chan contracts.MIDI))
		}
		m.wg.Wait()
		m.logger.Info("MIDI capture stopped")
	})
	return nil
}
