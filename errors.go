package soilwater

import "fmt"

// ConfigurationError reports invalid or physically inconsistent inputs
// detected before simulation begins.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("soilwater: invalid configuration: %s: %s", e.Field, e.Reason)
}

// DimensionError reports a layer or time index outside the allocated state
// arrays, including time steps that have not yet been simulated.
type DimensionError struct {
	Axis  string
	Index int
	Max   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("soilwater: %s index %d out of range [0,%d]", e.Axis, e.Index, e.Max)
}
