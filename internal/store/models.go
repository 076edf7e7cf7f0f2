package store

import (
	"time"

	"tarot345/internal/game"
)

// GameSummary is a game without its hands, as listed on the score sheet index.
type GameSummary struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Players   []game.Player `json:"players"`
	HandCount int           `json:"hand_count"`
}
