package workers

import "errors"

var (
	// ErrUnsupportedFunction is returned for jobs naming an undeclared
	// function.
	ErrUnsupportedFunction = errors.New("unsupported function")

	// ErrMissingParameter is returned when a job lacks a parameter its
	// function declares as required.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter is returned when a parameter has the wrong type or
	// an out-of-range value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrChannelClosed is returned for requests made after the worker was
	// closed, and delivered to requests still pending at close time.
	ErrChannelClosed = errors.New("derivation channel closed")
)
