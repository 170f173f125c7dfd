package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a YAML config. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile loads the config at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.System.SimulationType == "" {
		c.System.SimulationType = SimulationDiscrete
	}
	for gi := range c.AgentGroups {
		g := &c.AgentGroups[gi]
		if g.Shape.Type == "" {
			g.Shape.Type = ShapeCircle
		}
		if g.Control == "" {
			g.Control = "OVERLORD"
		}
	}
}
