// Package device is the thin lighting facade over an open controller: it
// frames lighting packets for one fan or strip on one controller port.
package device

import (
	"github.com/example/riingctl/internal/driver"
	"github.com/example/riingctl/internal/protocol"
)

// Output is the slice of the controller driver a device needs.
type Output interface {
	WriteOut(data []byte) error
}

// Device is one addressable LED ring/strip hanging off a controller port.
// It does not own the controller; lifetime is managed by whoever opened it.
type Device struct {
	out   Output
	model driver.Model
	port  int
	leds  int
}

// New wires a device to a controller port. port is 1-based, leds is the
// number of physical LED slots on the attached fan or strip.
func New(out Output, model driver.Model, port, leds int) *Device {
	return &Device{out: out, model: model, port: port, leds: leds}
}

// NumLEDs returns the physical LED slot count.
func (d *Device) NumLEDs() int { return d.leds }

// Port returns the 1-based controller port.
func (d *Device) Port() int { return d.port }

// PerLEDMode is the model-specific mode byte for per-LED addressing.
func (d *Device) PerLEDMode() byte { return d.model.PerLEDMode() }

// SetLighting frames and writes one lighting packet: the set-lighting
// command, the port, the mode byte with the speed folded in, then the
// optional GRB value array (one triple per LED slot).
func (d *Device) SetLighting(mode, speed byte, values []byte) error {
	data := make([]byte, 0, 4+len(values))
	data = append(data, protocol.CommandSetLighting...)
	data = append(data, byte(d.port), mode+speed)
	data = append(data, values...)
	return d.out.WriteOut(data)
}
