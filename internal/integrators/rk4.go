package integrators

import "github.com/san-kum/battsim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta method on a fixed step.
// Slope buffers are reused between steps, so an instance serves one run.
type RK4 struct {
	k       [4]dynamo.State
	scratch dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) resize(n int) {
	if len(r.scratch) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.scratch = make(dynamo.State, n)
}

// stage evaluates the slope at x + h*prev and stores it in dst.
func (r *RK4) stage(sys dynamo.System, x, prev, dst dynamo.State, t, h float64) {
	for i := range x {
		r.scratch[i] = x[i] + h*prev[i]
	}
	copy(dst, sys.Derive(r.scratch, t+h))
}

func (r *RK4) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	r.resize(len(x))
	k1, k2, k3, k4 := r.k[0], r.k[1], r.k[2], r.k[3]

	copy(k1, sys.Derive(x, t))
	r.stage(sys, x, k1, k2, t, dt/2)
	r.stage(sys, x, k2, k3, t, dt/2)
	r.stage(sys, x, k3, k4, t, dt)

	result := make(dynamo.State, len(x))
	dt6 := dt / 6
	for i := range x {
		result[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}
