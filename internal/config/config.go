// Package config loads the daemon configuration: which controllers to
// open, what hangs off their ports, and the lighting effect to run.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Attached struct {
	Port int `yaml:"port"`
	LEDs int `yaml:"leds"`
}

type Controller struct {
	Model   string     `yaml:"model"` // g3 | riingplus | riingtrio | riingquad
	Unit    int        `yaml:"unit"`  // 1-based; resolves the product id
	Devices []Attached `yaml:"devices"`
}

type Config struct {
	Controllers []Controller `yaml:"controllers"`

	// Lighting is handed to the effect factory as-is; its keys depend on
	// the chosen model.
	Lighting map[string]any `yaml:"lighting_manager"`
}

// DefaultLEDs is assumed when a port entry does not name its slot count.
const DefaultLEDs = 12

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	for i := range c.Controllers {
		if c.Controllers[i].Unit == 0 {
			c.Controllers[i].Unit = 1
		}
		for j := range c.Controllers[i].Devices {
			if c.Controllers[i].Devices[j].LEDs == 0 {
				c.Controllers[i].Devices[j].LEDs = DefaultLEDs
			}
		}
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
