// Package sensors provides the temperature readings the reactive lighting
// effects feed on. The system implementation reads the kernel's thermal
// zones; effects only ever see the narrow Provider interface.
package sensors

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/sysfs"
)

// Provider returns the current reading of a named temperature sensor in
// degrees Celsius.
type Provider interface {
	Temperature(name string) (float64, error)
}

// System reads /sys/class/thermal through periph's sysfs bindings.
type System struct {
	initOnce sync.Once
	initErr  error
}

// NewSystem returns the host thermal-zone provider. Host drivers are
// initialized lazily on first read.
func NewSystem() *System { return &System{} }

func (s *System) Temperature(name string) (float64, error) {
	s.initOnce.Do(func() {
		_, s.initErr = host.Init()
	})
	if s.initErr != nil {
		return 0, fmt.Errorf("host init: %w", s.initErr)
	}

	sensor, err := sysfs.ThermalSensorByName(name)
	if err != nil {
		return 0, fmt.Errorf("thermal sensor %q: %w", name, err)
	}
	var env physic.Env
	if err := sensor.Sense(&env); err != nil {
		return 0, fmt.Errorf("reading %q: %w", name, err)
	}
	return env.Temperature.Celsius(), nil
}
