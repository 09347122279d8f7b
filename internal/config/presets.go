package config

import "sort"

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"pack-4s": preset(func(c *Config) {
		c.Cell.Count = 4
	}),
	"high-load": preset(func(c *Config) {
		c.Cell.Current = 15
	}),
	"still-air": preset(func(c *Config) {
		c.Environment.ConvectionCoeff = 2
	}),
	"forced-air": preset(func(c *Config) {
		c.Environment.ConvectionCoeff = 25
	}),
	"cold-start": preset(func(c *Config) {
		c.Environment.Ambient = -10
		c.Simulation.Duration = 3600
	}),
	"long-soak": preset(func(c *Config) {
		c.Simulation.Duration = 4 * 3600
		c.Simulation.Dt = 5
	}),
	"polished": preset(func(c *Config) {
		c.Environment.Emissivity = 0.1
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
