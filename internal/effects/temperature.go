package effects

import (
	"github.com/example/riingctl/internal/colors"
	"github.com/example/riingctl/internal/sensors"
)

// Hue anchors for the breakpoint interpolation: blue when cold, green on
// target, red when hot.
const (
	coldAngle   = 240.0
	targetAngle = 120.0
	hotAngle    = 0.0
)

// temperature maps a sensor reading onto a hue angle through the
// cold/target/hot breakpoints and broadcasts the resulting color.
type temperature struct {
	periodic
	sensor            sensors.Provider
	sensorName        string
	cold, target, hot float64
}

func newTemperature(cfg Config) Effect {
	e := &temperature{
		sensor:     sensors.NewSystem(),
		sensorName: cfg.stringKey("sensor_name", ""),
		cold:       cfg.floatKey("cold", 20),
		target:     cfg.floatKey("target", 30),
		hot:        cfg.floatKey("hot", 60),
	}
	e.init("temperature", cfg)
	e.frame = e.next
	return e
}

func (e *temperature) next() error {
	reading, err := e.sensor.Temperature(e.sensorName)
	if err != nil {
		return err
	}
	c := colors.HueToGRB(temperatureAngle(reading, e.cold, e.target, e.hot))
	for _, d := range e.devices {
		if err := d.SetLighting(d.PerLEDMode(), 0, colors.Repeat(c, d.NumLEDs())); err != nil {
			return err
		}
	}
	return nil
}

// temperatureAngle is the three-segment piecewise-linear mapping from a
// reading to a hue angle. It is continuous, monotonically decreasing
// between the breakpoints and clamped to the cold/hot anchors outside.
func temperatureAngle(reading, cold, target, hot float64) float64 {
	switch {
	case reading <= cold:
		return coldAngle
	case reading < target:
		return coldAngle - (coldAngle-targetAngle)*(reading-cold)/(target-cold)
	case reading >= hot:
		return hotAngle
	default:
		return targetAngle - (targetAngle-hotAngle)*(reading-target)/(hot-target)
	}
}

// temperature2 skips the hue detour and interpolates directly between two
// configured colors over the clamped cold..hot range.
type temperature2 struct {
	periodic
	sensor     sensors.Provider
	sensorName string
	cold, hot  float64
	coldRGB    colors.GRB
	hotRGB     colors.GRB
}

func newTemperature2(cfg Config) Effect {
	e := &temperature2{
		sensor:     sensors.NewSystem(),
		sensorName: cfg.stringKey("sensor_name", ""),
		cold:       cfg.floatKey("cold", 20),
		hot:        cfg.floatKey("hot", 60),
	}
	e.init("temperature2", cfg)
	cg, cr, cb, _ := cfg.grbKey("cold_rgb")
	hg, hr, hb, _ := cfg.grbKey("hot_rgb")
	e.coldRGB = colors.GRB{G: cg, R: cr, B: cb}
	e.hotRGB = colors.GRB{G: hg, R: hr, B: hb}
	e.frame = e.next
	return e
}

func (e *temperature2) next() error {
	reading, err := e.sensor.Temperature(e.sensorName)
	if err != nil {
		return err
	}
	factor := 0.0
	if e.hot > e.cold {
		factor = (reading - e.cold) / (e.hot - e.cold)
	}
	c := colors.Lerp(e.coldRGB, e.hotRGB, factor)
	for _, d := range e.devices {
		if err := d.SetLighting(d.PerLEDMode(), 0, colors.Repeat(c, d.NumLEDs())); err != nil {
			return err
		}
	}
	return nil
}
