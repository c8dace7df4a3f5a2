package sim

import "fmt"

// NotFoundError indicates the simulation results file does not exist.
// The orchestrator reports it with remediation guidance instead of failing.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("simulation data not found: %s", e.Path)
}

// MalformedInputError indicates the results file exists but could not be
// parsed as a simulation document.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed simulation data %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingFieldError indicates a renderer or aggregation needed a document
// section that was absent. Fields are accessed optimistically, so this
// surfaces at first use rather than at load time.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("simulation data is missing required field %q", e.Field)
}
