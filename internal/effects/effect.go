// Package effects implements the lighting effect engine: a registry of
// effect models, one-shot effects that push a single configuration packet,
// and periodic effects that recompute colors on a background tick loop.
package effects

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/example/riingctl/internal/protocol"
)

// Device is the slice of the lighting facade the effects drive. Effects
// hold plain references; device lifetime is owned elsewhere.
type Device interface {
	NumLEDs() int
	PerLEDMode() byte
	SetLighting(mode, speed byte, values []byte) error
}

// Effect is one configured lighting behavior. AttachDevice order matters
// for per-LED addressing; Start with no attached devices is a no-op.
type Effect interface {
	// Model returns the effect's lowercase model tag.
	Model() string

	// AttachDevice appends a device to the effect's send list.
	AttachDevice(d Device)

	// Start begins the effect. One-shot effects send immediately and
	// return; periodic effects spawn their tick loop.
	Start() error

	// Stop tears the effect down. Only periodic effects have anything to
	// do; their loop exits within one tick interval.
	Stop()
}

// ledSlots is the value-array width used by the broadcast one-shot modes.
const ledSlots = 12

type base struct {
	model   string
	devices []Device
}

func (b *base) Model() string { return b.model }

func (b *base) AttachDevice(d Device) {
	b.devices = append(b.devices, d)
}

func (b *base) Stop() {}

// Config is the parsed key-value mapping one effect is built from. The
// recognized keys vary per model; missing keys are logged and recovered,
// never fatal.
type Config map[string]any

func (c Config) stringKey(key, def string) string {
	if raw, ok := c[key]; ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return def
}

func (c Config) floatKey(key string, def float64) float64 {
	if f, ok := toFloat(c[key]); ok {
		return f
	}
	return def
}

// channel reads a top-level color channel ("r", "g" or "b"), warning by
// key name when absent so a half-written config is visible in the log.
func (c Config) channel(key string) (uint8, bool) {
	raw, ok := c[key]
	if !ok {
		log.Warn().Str("key", key).Msg("not found in lighting config")
		return 0, false
	}
	f, ok := toFloat(raw)
	if !ok {
		log.Warn().Str("key", key).Msg("not a number in lighting config")
		return 0, false
	}
	return clampChannel(f), true
}

// grbKey reads a nested {g, r, b} mapping such as odd_rgb or cold_rgb.
func (c Config) grbKey(key string) (g, r, b uint8, ok bool) {
	raw, present := c[key]
	if !present {
		log.Warn().Str("key", key).Msg("not found in lighting config")
		return 0, 0, 0, false
	}
	m, isMap := raw.(map[string]any)
	if !isMap {
		log.Warn().Str("key", key).Msg("not a g/r/b mapping in lighting config")
		return 0, 0, 0, false
	}
	ch := func(name string) uint8 {
		f, _ := toFloat(m[name])
		return clampChannel(f)
	}
	return ch("g"), ch("r"), ch("b"), true
}

// speedByte maps the config speed name onto the wire speed constant.
// Unknown names fall back to normal with a warning.
func (c Config) speedByte() byte {
	switch strings.ToLower(c.stringKey("speed", "normal")) {
	case "slow":
		return protocol.SpeedSlow
	case "normal":
		return protocol.SpeedNormal
	case "fast":
		return protocol.SpeedFast
	case "extreme":
		return protocol.SpeedExtreme
	default:
		log.Warn().Str("speed", c.stringKey("speed", "")).Msg("unknown speed, using normal")
		return protocol.SpeedNormal
	}
}

// tickInterval maps the config speed name onto the periodic loop delay.
func (c Config) tickInterval() time.Duration {
	switch strings.ToLower(c.stringKey("speed", "normal")) {
	case "extreme":
		return 0
	case "fast":
		return time.Second
	case "normal":
		return 2 * time.Second
	case "slow":
		return 3 * time.Second
	default:
		log.Warn().Str("speed", c.stringKey("speed", "")).Msg("unknown speed, using normal")
		return 2 * time.Second
	}
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint8:
		return float64(v), true
	default:
		return 0, false
	}
}

func clampChannel(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
