package contracts

import "fmt"

// DeviceInfo contains information about a MIDI input device.
type DeviceInfo struct {
	Name         string // Device name.
	Manufacturer string // Device manufacturer.
	EntityName   string // Name of the entity to which the device belongs.
}

// String formats the device for listings, e.g. "KeyStep (Arturia)".
func (d DeviceInfo) String() string {
	if d.Manufacturer == "" {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, d.Manufacturer)
}
