package game

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("invalid_rules")

// InvalidHandError reports a hand whose facts cannot be scored.
type InvalidHandError struct {
	Field  string
	Reason string
}

func (e *InvalidHandError) Error() string {
	return fmt.Sprintf("invalid hand: %s: %s", e.Field, e.Reason)
}

func invalidHand(field, format string, args ...any) error {
	return &InvalidHandError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func IsInvalidHand(err error) bool {
	var target *InvalidHandError
	return errors.As(err, &target)
}
