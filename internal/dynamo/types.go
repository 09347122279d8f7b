package dynamo

import "math"

type State []float64

// System is a first-order ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Name() string
	Step(sys System, x State, t float64, dt float64) State
}

// Steps returns the number of fixed steps that fit in duration. The last
// sample lands on Steps*dt, which may fall short of duration.
func Steps(duration, dt float64) int {
	return int(math.Floor(duration / dt))
}
