package effects

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Constructor builds one configured effect instance.
type Constructor func(Config) Effect

var registry = map[string]Constructor{}

// Register adds an effect model to the factory table. Names are matched
// case-insensitively; later registrations replace earlier ones.
func Register(model string, ctor Constructor) {
	registry[strings.ToLower(model)] = ctor
}

func init() {
	Register("full", newFull)
	Register("off", newOff)
	Register("perled", newPerLED)
	Register("flow", newFlow)
	Register("spectrum", newSpectrum)
	Register("ripple", newRipple)
	Register("blink", newBlink)
	Register("pulse", newPulse)
	Register("wave", newWave)
	Register("alternating", newAlternating)
	Register("temperature", newTemperature)
	Register("temperature2", newTemperature2)
	Register("clock", newClock)
}

// Factory pops the model key from the configuration and builds the
// matching effect. A missing or unknown model is not fatal: the caller
// gets nil and must treat "no effect" as a valid outcome.
func Factory(cfg Config) Effect {
	raw, present := cfg["model"]
	delete(cfg, "model")
	name, _ := raw.(string)
	if !present || name == "" {
		log.Warn().Msg("lighting config has no model key")
		return nil
	}
	ctor, ok := registry[strings.ToLower(name)]
	if !ok {
		log.Warn().Str("model", name).Msg("no such lighting effect")
		return nil
	}
	log.Info().Str("model", strings.ToLower(name)).Msg("initializing lighting effect")
	return ctor(cfg)
}
