// Package dynamo provides core simulation primitives for first-order systems.
//
// The package defines the fundamental interfaces and types shared by the
// thermal model and its steppers:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator interface
//
// # Example
//
//	pack := &physics.BatteryPack{ /* ... */ }
//	x := dynamo.State{pack.Ambient}
//	x = integrators.NewEuler().Step(pack, x, 0, dt)
//
// # Errors
//
// Validation failures wrap [ErrConfiguration] so callers can match them
// with errors.Is regardless of which field was rejected.
package dynamo
