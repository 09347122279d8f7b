package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrConfiguration indicates an input parameter outside its valid range.
	ErrConfiguration = errors.New("dynamo: invalid configuration")

	// ErrUnknownIntegrator indicates a stepper name with no registered implementation.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")
)
