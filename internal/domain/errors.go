package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStop         = errors.New("unknown stop")
	ErrEmptyRoute          = errors.New("add at least one position to the route")
	ErrZeroOrders          = errors.New("enter at least one order")
	ErrStopIndexOutOfRange = errors.New("stop index out of range")
	ErrTooManyOrders       = errors.New("too many orders for one trip")
)

// UnknownStopError reports an identifier absent from the position table.
type UnknownStopError struct {
	ID string
}

func (e *UnknownStopError) Error() string {
	return fmt.Sprintf("unknown stop %q", e.ID)
}

func (e *UnknownStopError) Is(target error) bool { return target == ErrUnknownStop }

// IsValidationError reports whether err should be shown to the end user as-is.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyRoute) ||
		errors.Is(err, ErrZeroOrders) ||
		errors.Is(err, ErrTooManyOrders)
}
