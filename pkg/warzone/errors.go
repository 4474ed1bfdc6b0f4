package warzone

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMap      = errors.New("invalid map")
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrCommandRejected = errors.New("command not accepted in current state")
	ErrMissingArgument = errors.New("missing command argument")
	ErrDeployLocked    = errors.New("deploy orders cannot be moved or removed")
	ErrIndexOutOfRange = errors.New("order index out of range")
	ErrOrderFinished   = errors.New("order already finished")
)

// MapError describes why a map failed to load or validate.
type MapError struct {
	Message string
}

func (e *MapError) Error() string {
	return "invalid map: " + e.Message
}

func (e *MapError) Unwrap() error { return ErrInvalidMap }

func mapErrorf(format string, args ...any) error {
	return &MapError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError describes why an order is invalid.
type ValidationError struct {
	Order   *Order
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s order from %s: %s", e.Order.Kind, e.Order.Issuer, e.Message)
}
