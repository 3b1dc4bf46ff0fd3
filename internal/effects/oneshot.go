package effects

import (
	"errors"

	"github.com/example/riingctl/internal/colors"
	"github.com/example/riingctl/internal/protocol"
)

// The one-shot effects map their configuration onto a single lighting
// packet per attached device and are done. Missing color keys are logged
// by the config getters and simply skip the send.

type full struct {
	base
	cfg Config
}

func newFull(cfg Config) Effect {
	return &full{base: base{model: "full"}, cfg: cfg}
}

func (e *full) Start() error {
	values, ok := broadcastValues(e.cfg)
	if !ok {
		return nil
	}
	return e.sendAll(protocol.ModeFull, 0, values)
}

type off struct {
	base
}

func newOff(Config) Effect {
	return &off{base: base{model: "off"}}
}

func (e *off) Start() error {
	return e.sendAll(protocol.ModeFull, 0, make([]byte, 3*ledSlots))
}

type perLED struct {
	base
	cfg Config
}

func newPerLED(cfg Config) Effect {
	return &perLED{base: base{model: "perled"}, cfg: cfg}
}

func (e *perLED) Start() error {
	values, ok := broadcastValues(e.cfg)
	if !ok {
		return nil
	}
	for _, d := range e.devices {
		if err := d.SetLighting(d.PerLEDMode(), 0, values); err != nil {
			return err
		}
	}
	return nil
}

type flow struct {
	base
	speed byte
}

func newFlow(cfg Config) Effect {
	return &flow{base: base{model: "flow"}, speed: cfg.speedByte()}
}

func (e *flow) Start() error {
	return e.sendAll(protocol.ModeFlow, e.speed, nil)
}

type spectrum struct {
	base
	speed byte
}

func newSpectrum(cfg Config) Effect {
	return &spectrum{base: base{model: "spectrum"}, speed: cfg.speedByte()}
}

func (e *spectrum) Start() error {
	return e.sendAll(protocol.ModeSpectrum, e.speed, nil)
}

type ripple struct {
	base
	cfg   Config
	speed byte
}

func newRipple(cfg Config) Effect {
	return &ripple{base: base{model: "ripple"}, cfg: cfg, speed: cfg.speedByte()}
}

func (e *ripple) Start() error {
	c, ok := configColor(e.cfg)
	if !ok {
		return nil
	}
	// Ripple takes a single seed triple, not a full per-LED array.
	return e.sendAll(protocol.ModeRipple, e.speed, c.Triple())
}

type blink struct {
	base
	cfg   Config
	speed byte
}

func newBlink(cfg Config) Effect {
	return &blink{base: base{model: "blink"}, cfg: cfg, speed: cfg.speedByte()}
}

func (e *blink) Start() error {
	values, ok := broadcastValues(e.cfg)
	if !ok {
		return nil
	}
	return e.sendAll(protocol.ModeBlink, e.speed, values)
}

type pulse struct {
	base
	cfg   Config
	speed byte
}

func newPulse(cfg Config) Effect {
	return &pulse{base: base{model: "pulse"}, cfg: cfg, speed: cfg.speedByte()}
}

func (e *pulse) Start() error {
	values, ok := broadcastValues(e.cfg)
	if !ok {
		return nil
	}
	return e.sendAll(protocol.ModePulse, e.speed, values)
}

// wave is a reserved hardware mode whose per-LED framing was never worked
// out; starting it must fail loudly rather than quietly do nothing.
type wave struct {
	base
}

func newWave(Config) Effect {
	return &wave{base: base{model: "wave"}}
}

func (e *wave) Start() error {
	return errors.New("wave lighting mode is reserved and not implemented")
}

// sendAll writes the same packet to every attached device.
func (b *base) sendAll(mode, speed byte, values []byte) error {
	for _, d := range b.devices {
		if err := d.SetLighting(mode, speed, values); err != nil {
			return err
		}
	}
	return nil
}

// configColor pulls the top-level r/g/b keys; false means a warning was
// logged and the send should be skipped.
func configColor(cfg Config) (colors.GRB, bool) {
	g, okG := cfg.channel("g")
	r, okR := cfg.channel("r")
	b, okB := cfg.channel("b")
	if !okG || !okR || !okB {
		return colors.GRB{}, false
	}
	return colors.GRB{G: g, R: r, B: b}, true
}

// broadcastValues repeats the configured color across every LED slot.
func broadcastValues(cfg Config) ([]byte, bool) {
	c, ok := configColor(cfg)
	if !ok {
		return nil, false
	}
	return colors.Repeat(c, ledSlots), true
}
