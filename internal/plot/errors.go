package plot

import "errors"

// Domain errors for graph rendering.
var (
	// ErrDegenerateViewport indicates x_min >= x_max (or a non-finite bound).
	ErrDegenerateViewport = errors.New("plot: x min must be less than x max")

	// ErrEmptyEquation indicates an empty entry in a '|' separated equation list.
	ErrEmptyEquation = errors.New("plot: empty equation")
)

// EvalError wraps a Sample Provider failure. Its message is the provider's
// diagnostic, unchanged.
type EvalError struct {
	Equation string
	Err      error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
