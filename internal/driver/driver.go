// Package driver owns the USB protocol for Riing family controllers:
// locating the device, claiming its interface, discovering the bulk
// endpoint pair and framing every transfer as a fixed 64-byte packet.
package driver

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/rs/zerolog/log"

	"github.com/example/riingctl/internal/protocol"
)

// VendorID is shared by every controller model this driver speaks to.
const VendorID uint16 = 0x264a

// writeEndpoint and readEndpoint are the slices of gousb endpoint behavior
// the controller actually uses; tests inject fakes through them.
type writeEndpoint interface {
	Write(data []byte) (int, error)
}

type readEndpoint interface {
	Read(buf []byte) (int, error)
}

// Controller is one open USB controller. It exclusively owns the claimed
// interface until Close; callers own the Controller itself.
type Controller struct {
	model Model
	unit  int

	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  writeEndpoint
	in   readEndpoint
}

// Open locates the controller for the given model and unit, resets it,
// detaches any kernel driver, claims interface 0 and discovers the bulk
// endpoint pair, then sends the init command. The returned Controller must
// be Closed by the caller.
func Open(ctx *gousb.Context, model Model, unit int) (*Controller, error) {
	pid := model.ProductID(unit)
	lg := log.With().Str("model", model.String()).
		Uint16("vendor", VendorID).Uint16("product", pid).Logger()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(VendorID), gousb.ID(pid))
	if err != nil {
		return nil, fmt.Errorf("opening device %04x:%04x: %w", VendorID, pid, err)
	}
	if dev == nil {
		return nil, &DeviceNotFoundError{Vendor: VendorID, Product: pid}
	}

	// Fail safe in case the last session left the device dirty.
	lg.Debug().Msg("resetting device")
	if err := dev.Reset(); err != nil {
		lg.Debug().Err(err).Msg("device reset failed")
	}

	// The kernel claims the interface with its default HID driver; it has
	// to be detached or every claim fails with "resource busy". A failed
	// detach usually means it was never attached, so carry on.
	if err := dev.SetAutoDetach(true); err != nil {
		lg.Warn().Err(err).Msg("kernel driver detach failed")
	}

	cfg, err := dev.Config(1)
	if err != nil {
		dev.Close()
		return nil, &ClaimError{Vendor: VendorID, Product: pid, Err: err}
	}
	intf, err := cfg.Interface(0, 0)
	if err != nil {
		cfg.Close()
		dev.Close()
		return nil, &ClaimError{Vendor: VendorID, Product: pid, Err: err}
	}

	c := &Controller{model: model, unit: unit, dev: dev, cfg: cfg, intf: intf}
	if err := c.discoverEndpoints(intf); err != nil {
		c.Close()
		return nil, err
	}
	lg.Debug().Msg("interface claimed")

	if err := c.initController(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// discoverEndpoints picks exactly one bulk endpoint per direction off the
// claimed interface. Both must exist.
func (c *Controller) discoverEndpoints(intf *gousb.Interface) error {
	for _, ep := range intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeBulk {
			continue
		}
		switch ep.Direction {
		case gousb.EndpointDirectionOut:
			out, err := intf.OutEndpoint(ep.Number)
			if err != nil {
				return &TransferError{Direction: "out", Err: err}
			}
			c.out = out
		case gousb.EndpointDirectionIn:
			in, err := intf.InEndpoint(ep.Number)
			if err != nil {
				return &TransferError{Direction: "in", Err: err}
			}
			c.in = in
		}
	}
	if c.out == nil {
		return &MissingEndpointError{Direction: "out"}
	}
	if c.in == nil {
		return &MissingEndpointError{Direction: "in"}
	}
	return nil
}

// initController puts the hardware into a known state. All current variants
// share the same init command.
func (c *Controller) initController() error {
	return c.WriteOut(protocol.CommandInit)
}

// Model returns the hardware variant this controller was opened as.
func (c *Controller) Model() Model { return c.model }

// Unit returns the 1-based unit number used to resolve the product id.
func (c *Controller) Unit() int { return c.unit }

// WriteOut pads data to the fixed transfer length and writes it to the OUT
// endpoint. Oversized payloads are dropped without an error or a log line;
// the hardware cannot take them and callers never check for the condition.
func (c *Controller) WriteOut(data []byte) error {
	if len(data) > protocol.TransferLength {
		return nil
	}
	if _, err := c.out.Write(protocol.Pad(data)); err != nil {
		return &TransferError{Direction: "out", Err: err}
	}
	return nil
}

// ReadIn blocks until n bytes (usually one full packet) arrive on the IN
// endpoint.
func (c *Controller) ReadIn(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := c.in.Read(buf)
	if err != nil {
		return nil, &TransferError{Direction: "in", Err: err}
	}
	return buf[:read], nil
}

// SaveProfile persists the active configuration to the controller's NVRAM.
// Models without profile storage treat this as a no-op.
func (c *Controller) SaveProfile() error {
	if !c.model.hasProfileStorage() {
		return nil
	}
	return c.WriteOut(protocol.CommandSaveProfile)
}

// Close releases the interface, configuration and device handle.
func (c *Controller) Close() error {
	if c.intf != nil {
		c.intf.Close()
		c.intf = nil
	}
	var err error
	if c.cfg != nil {
		err = c.cfg.Close()
		c.cfg = nil
	}
	if c.dev != nil {
		if cerr := c.dev.Close(); err == nil {
			err = cerr
		}
		c.dev = nil
	}
	return err
}
