package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/battsim/internal/physics"
	"github.com/san-kum/battsim/internal/thermal"
)

const (
	DefaultCells        = 1
	DefaultCurrent      = 8.96
	DefaultResistance   = 0.025
	DefaultSpecificHeat = 1800.0
	DefaultMass         = 0.045
	DefaultArea         = 0.01
	DefaultAmbient      = 38.0
	DefaultEmissivity   = 0.9
	DefaultConvection   = 5.0
	DefaultDt           = 1.0
	DefaultDuration     = 1021.0
	DefaultIntegrator   = "euler"
)

type Config struct {
	Integrator  string            `yaml:"integrator"`
	Cell        CellConfig        `yaml:"cell"`
	Environment EnvironmentConfig `yaml:"environment"`
	Simulation  SimulationConfig  `yaml:"simulation"`
}

type CellConfig struct {
	Count        int     `yaml:"count"`
	Current      float64 `yaml:"current"`
	Resistance   float64 `yaml:"resistance"`
	SpecificHeat float64 `yaml:"specific_heat"`
	Mass         float64 `yaml:"mass"`
	Area         float64 `yaml:"area"`
}

type EnvironmentConfig struct {
	Ambient         float64 `yaml:"ambient"`
	Emissivity      float64 `yaml:"emissivity"`
	StefanBoltzmann float64 `yaml:"stefan_boltzmann"`
	ConvectionCoeff float64 `yaml:"h_conv"`
}

type SimulationConfig struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: DefaultIntegrator,
		Cell: CellConfig{
			Count:        DefaultCells,
			Current:      DefaultCurrent,
			Resistance:   DefaultResistance,
			SpecificHeat: DefaultSpecificHeat,
			Mass:         DefaultMass,
			Area:         DefaultArea,
		},
		Environment: EnvironmentConfig{
			Ambient:         DefaultAmbient,
			Emissivity:      DefaultEmissivity,
			StefanBoltzmann: physics.StefanBoltzmann,
			ConvectionCoeff: DefaultConvection,
		},
		Simulation: SimulationConfig{
			Dt:       DefaultDt,
			Duration: DefaultDuration,
		},
	}
}

// Load reads a YAML file on top of the defaults, so keys left out of the
// file keep their default values.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto decodes a YAML file over base, which is modified in place and
// returned. Keys missing from the file keep base's values.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a copy safe to modify without touching presets.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) Thermal() thermal.Config {
	return thermal.Config{
		NumCells:        c.Cell.Count,
		Current:         c.Cell.Current,
		Resistance:      c.Cell.Resistance,
		SpecificHeat:    c.Cell.SpecificHeat,
		CellMass:        c.Cell.Mass,
		CellArea:        c.Cell.Area,
		Ambient:         c.Environment.Ambient,
		Emissivity:      c.Environment.Emissivity,
		StefanBoltzmann: c.Environment.StefanBoltzmann,
		ConvectionCoeff: c.Environment.ConvectionCoeff,
		Dt:              c.Simulation.Dt,
		Duration:        c.Simulation.Duration,
	}
}
