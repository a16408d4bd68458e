package core

import "errors"

var (
	// ErrModelUnsupported is returned when an operation is invoked under an
	// Earth model for which it is not defined (currently the perfect sphere).
	ErrModelUnsupported = errors.New("operation not supported under earth model")

	// ErrInvalidFrame is returned when a frame conversion is requested that
	// the active Earth model does not define.
	ErrInvalidFrame = errors.New("coordinate frame not valid for earth model")

	// ErrRange is returned when a numeric input lies outside the domain the
	// calculation is valid for, e.g. a latitude beyond +/-90 degrees.
	ErrRange = errors.New("value out of range")
)
