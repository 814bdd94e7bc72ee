//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/leandrodaf/harmony/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIIN is a WinMM MIDI input handle.
type HMIDIIN windows.Handle

const (
	callbackFunction = 0x00030000
	midiIOStatus     = 0x00000020
)

// WinMM input messages delivered to the callback.
const (
	mimOpen      = 0x3C1
	mimClose     = 0x3C2
	mimData      = 0x3C3
	mimError     = 0x3C5
	mimLongError = 0x3C6
	mimMoreData  = 0x3CC
)

var (
	ErrNoMIDIDevices = errors.New("no MIDI devices found")
	ErrNotConnected  = errors.New("no MIDI device selected")
)

type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// ClientMid reads note events from a WinMM MIDI input.
type ClientMid struct {
	logger          contracts.Logger
	eventChannel    atomic.Value // chan contracts.MIDI
	handle          HMIDIIN
	connected       bool
	started         bool
	mu              sync.Mutex
	callback        uintptr
	midiEventFilter *contracts.MIDIEventFilter
}

var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")

	// the WinMM callback is a plain function; it finds its client through dwInstance
	midiCallback = windows.NewCallback(midiInCallback)
)

// NewMIDIClient creates a WinMM MIDI input client.
func NewMIDIClient(options *contracts.Options) (contracts.ClientMIDI, error) {
	options.Logger.Debug("WinMM MIDI client created")
	return &ClientMid{
		logger:          options.Logger,
		midiEventFilter: options.MIDIEventFilter,
		callback:        midiCallback,
	}, nil
}

// ListDevices lists the WinMM MIDI inputs.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("failed to read MIDI device capabilities", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		name := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			Name:         name,
			EntityName:   name,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// SelectDevice opens input deviceID, closing any previously opened input.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		if err := m.closeDevice(); err != nil {
			return fmt.Errorf("failed to close previous MIDI device: %w", err)
		}
	}

	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(deviceID),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(callbackFunction|midiIOStatus),
	)
	if r1 != 0 {
		return fmt.Errorf("failed to open MIDI device %d: %v", deviceID, err)
	}

	m.connected = true
	m.logger.Info("MIDI device connected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// StartCapture starts the input and delivers events to eventChannel.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		m.logger.Error(ErrNotConnected.Error())
		return
	}
	m.eventChannel.Store(eventChannel)
	if m.started {
		return
	}

	r1, _, err := procMidiInStart.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("failed to start MIDI capture", m.logger.Field().Error("error", err))
		return
	}
	m.started = true
	m.logger.Info("MIDI capture started")
}

func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*ClientMid)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case mimData:
		event := contracts.MIDI{
			Timestamp: uint64(time.Now().UTC().UnixNano()),
			Command:   byte(dwParam1 & 0xFF),
			Note:      byte((dwParam1 >> 8) & 0xFF),
			Velocity:  byte((dwParam1 >> 16) & 0xFF),
		}
		if !m.midiEventFilter.Allows(event.Command) {
			return 0
		}
		if ch, ok := m.eventChannel.Load().(chan contracts.MIDI); ok && ch != nil {
			select {
			case ch <- event:
			default:
				m.logger.Warn("MIDI event channel is full; event discarded")
			}
		}
	case mimError, mimLongError:
		m.logger.Error("MIDI input error", m.logger.Field().Int("message", int(wMsg)))
	case mimOpen, mimClose, mimMoreData:
	default:
		m.logger.Debug("unknown MIDI input message", m.logger.Field().Int("message", int(wMsg)))
	}
	return 0
}

// Stop halts capture and closes the device.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}
	if err := m.closeDevice(); err != nil {
		return fmt.Errorf("failed to stop MIDI capture: %w", err)
	}
	m.logger.Info("MIDI capture stopped")
	return nil
}

func (m *ClientMid) closeDevice() error {
	if m.started {
		if r1, _, err := procMidiInStop.Call(uintptr(m.handle)); r1 != 0 {
			return err
		}
	}
	if r1, _, err := procMidiInClose.Call(uintptr(m.handle)); r1 != 0 {
		return err
	}

	m.connected = false
	m.started = false
	m.handle = 0
	m.eventChannel.Store(make(chan contracts.MIDI))
	return nil
}
