package thermal

import (
	"github.com/san-kum/battsim/internal/dynamo"
	"github.com/san-kum/battsim/internal/integrators"
)

type Sample struct {
	Time        float64 // s
	Temperature float64 // C
}

// Series is the recorded trajectory, one sample per step starting at t=0.
type Series []Sample

func (s Series) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Time
	}
	return out
}

func (s Series) Temperatures() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Temperature
	}
	return out
}

// Peak returns the hottest sample.
func (s Series) Peak() Sample {
	var peak Sample
	for i, p := range s {
		if i == 0 || p.Temperature > peak.Temperature {
			peak = p
		}
	}
	return peak
}

type Result struct {
	Final      float64
	Series     Series
	Derived    Derived
	Integrator string
}

// Run integrates the pack temperature with explicit Euler steps.
func Run(cfg Config) (*Result, error) {
	return RunWith(cfg, integrators.NewEuler())
}

// RunWith integrates with the given fixed-step integrator. Sample k sits at
// k*dt; when dt does not divide the duration the last sample falls short of
// it rather than overshooting.
func RunWith(cfg Config, integ dynamo.Integrator) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pack := cfg.Pack()
	n := cfg.Samples()
	series := make(Series, n)

	x := dynamo.State{cfg.Ambient}
	series[0] = Sample{Time: 0, Temperature: x[0]}

	for k := 1; k < n; k++ {
		prev := float64(k-1) * cfg.Dt
		x = integ.Step(pack, x, prev, cfg.Dt)
		series[k] = Sample{Time: float64(k) * cfg.Dt, Temperature: x[0]}
	}

	return &Result{
		Final:      x[0],
		Series:     series,
		Derived:    cfg.Derive(),
		Integrator: integ.Name(),
	}, nil
}
