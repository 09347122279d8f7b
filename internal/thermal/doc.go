// Package thermal runs the lumped-mass battery pack temperature simulation.
//
// A [Config] describes the cells, the load and the environment. [Run]
// validates it, derives the pack constants once and steps the temperature
// forward on a fixed grid, returning the final value and the full [Series].
// Nothing in this package prints, plots or logs; callers consume the
// returned series.
//
//	res, err := thermal.Run(cfg)
//	if errors.Is(err, dynamo.ErrConfiguration) {
//	    // rejected before any step was taken
//	}
package thermal
