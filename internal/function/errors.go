package function

import "fmt"

// ConfigError reports invalid construction parameters or an unusable
// mode/operation combination for this function.
type ConfigError struct {
	Param  string // Offending parameter ("numInputs", "expr", "mode", ...)
	Detail string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Detail)
}

// DimensionError reports a length mismatch between a supplied vector (or
// the expression's own output) and the function's declared dimensions.
type DimensionError struct {
	What string // What was mis-sized ("point", "seed", "outputs")
	Got  int
	Want int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.What, e.Got, e.Want)
}
