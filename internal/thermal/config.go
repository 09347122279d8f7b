package thermal

import (
	"fmt"
	"math"

	"github.com/san-kum/battsim/internal/dynamo"
	"github.com/san-kum/battsim/internal/physics"
)

// Config holds the physical and numerical inputs of one run. It is built
// once before the run and treated as read-only afterwards.
type Config struct {
	NumCells        int
	Current         float64 // A
	Resistance      float64 // ohm, per cell
	SpecificHeat    float64 // J/(kg*C)
	CellMass        float64 // kg
	CellArea        float64 // m^2
	Ambient         float64 // C
	Emissivity      float64
	StefanBoltzmann float64 // W/(m^2*K^4)
	ConvectionCoeff float64 // W/(m^2*C)
	Dt              float64 // s
	Duration        float64 // s
}

// ConfigurationError reports the first parameter that violates its bounds.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s = %g: %s", dynamo.ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return dynamo.ErrConfiguration
}

// Validate checks every field is finite and within range. Current and
// resistance may be zero (no load); mass, area, heat capacity and the time
// grid must be strictly positive. Derived constants are checked too, so the
// step loop never divides by zero or meets an infinite loss term at ambient.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"current", c.Current},
		{"resistance", c.Resistance},
		{"specific_heat", c.SpecificHeat},
		{"cell_mass", c.CellMass},
		{"cell_area", c.CellArea},
		{"ambient", c.Ambient},
		{"emissivity", c.Emissivity},
		{"stefan_boltzmann", c.StefanBoltzmann},
		{"h_conv", c.ConvectionCoeff},
		{"dt", c.Dt},
		{"duration", c.Duration},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigurationError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
	}

	if c.NumCells < 1 {
		return &ConfigurationError{Field: "num_cells", Value: float64(c.NumCells), Reason: "must be at least 1"}
	}

	positive := []struct {
		name  string
		value float64
	}{
		{"specific_heat", c.SpecificHeat},
		{"cell_mass", c.CellMass},
		{"cell_area", c.CellArea},
		{"dt", c.Dt},
		{"duration", c.Duration},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return &ConfigurationError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"current", c.Current},
		{"resistance", c.Resistance},
		{"stefan_boltzmann", c.StefanBoltzmann},
		{"h_conv", c.ConvectionCoeff},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return &ConfigurationError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}

	if c.Emissivity < 0 || c.Emissivity > 1 {
		return &ConfigurationError{Field: "emissivity", Value: c.Emissivity, Reason: "must be within [0, 1]"}
	}
	if c.Ambient <= -physics.KelvinOffset {
		return &ConfigurationError{Field: "ambient", Value: c.Ambient, Reason: "must be above absolute zero"}
	}
	if c.Duration < c.Dt {
		return &ConfigurationError{Field: "duration", Value: c.Duration, Reason: "must be at least dt"}
	}

	d := c.Derive()
	derived := []struct {
		name  string
		value float64
	}{
		{"q_generated", d.QGenerated},
		{"pack_mass", d.PackMass},
		{"pack_area", d.PackArea},
		{"heat_capacity", d.PackMass * c.SpecificHeat},
	}
	for _, f := range derived {
		if math.IsInf(f.value, 0) {
			return &ConfigurationError{Field: f.name, Value: f.value, Reason: "overflows"}
		}
	}
	if hc := d.PackMass * c.SpecificHeat; hc <= 0 {
		return &ConfigurationError{Field: "heat_capacity", Value: hc, Reason: "underflows to zero"}
	}

	// The radiative term subtracts two fourth powers; an infinite ambient
	// power turns it into Inf-Inf even with zero emissivity.
	ak4 := math.Pow(c.Ambient+physics.KelvinOffset, 4)
	if math.IsInf(ak4, 0) || math.IsInf(c.Emissivity*c.StefanBoltzmann*d.PackArea*ak4, 0) {
		return &ConfigurationError{Field: "ambient", Value: c.Ambient, Reason: "radiative exchange overflows"}
	}

	return nil
}

// Derived holds the constants computed once from a Config.
type Derived struct {
	QGenerated float64 // W
	PackMass   float64 // kg
	PackArea   float64 // m^2
}

func (c Config) Derive() Derived {
	n := float64(c.NumCells)
	return Derived{
		QGenerated: n * (c.Current * c.Current) * c.Resistance,
		PackMass:   n * c.CellMass,
		PackArea:   n * c.CellArea,
	}
}

// Pack builds the lumped thermal model for this configuration.
func (c Config) Pack() *physics.BatteryPack {
	d := c.Derive()
	return &physics.BatteryPack{
		HeatGenerated:   d.QGenerated,
		Mass:            d.PackMass,
		Area:            d.PackArea,
		SpecificHeat:    c.SpecificHeat,
		Ambient:         c.Ambient,
		Emissivity:      c.Emissivity,
		Sigma:           c.StefanBoltzmann,
		ConvectionCoeff: c.ConvectionCoeff,
	}
}

// Samples is the length of the time series for this configuration.
func (c Config) Samples() int {
	return dynamo.Steps(c.Duration, c.Dt) + 1
}
