package scoring

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidHand    = errors.New("invalid_hand")
)
