package history

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrInvalidHand    = errors.New("invalid_hand")
	ErrPlayerNotFound = errors.New("player_not_found")
	ErrGameNotFound   = errors.New("game_not_found")
	ErrHandNotFound   = errors.New("hand_not_found")
	ErrPlayerInUse    = errors.New("player_in_use")
	ErrConflict       = errors.New("conflict")
	// ErrScoresMismatch rejects a score vector that the hand's facts cannot
	// produce.
	ErrScoresMismatch = errors.New("scores_mismatch")
)
