package gof

import "errors"

var (
	// ErrInvalidOperation is returned when an operation is not allowed in the
	// receiver's current state (e.g. constructing a second singleton instance).
	ErrInvalidOperation = errors.New("gof: invalid operation")

	// ErrInvalidArgument is returned when an input is not one of the accepted
	// values (e.g. an unknown factory kind).
	ErrInvalidArgument = errors.New("gof: invalid argument")

	// ErrOutOfRange is returned when a cursor is advanced past its sequence.
	ErrOutOfRange = errors.New("gof: out of range")

	// ErrNotImplemented is returned when a capability has no concrete behavior.
	ErrNotImplemented = errors.New("gof: not implemented")
)
