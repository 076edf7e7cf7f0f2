package history

import (
	"tarot345/internal/game"
	"tarot345/internal/stats"
	"tarot345/internal/store"
)

// HandInput is a hand as entered at the table. Scores is optional: when set,
// the vector is kept as long as it is consistent with the facts.
type HandInput struct {
	Taker        int            `json:"taker"`
	Called       game.OptIndex  `json:"called"`
	Contract     game.Contract  `json:"contract"`
	AttackPoints int            `json:"attack_points"`
	Bouts        int            `json:"bouts"`
	LastTrump    game.OptIndex  `json:"last_trump"`
	Miseres      []int          `json:"miseres"`
	Handfuls     []game.Handful `json:"handfuls"`
	Slam         *game.Slam     `json:"slam"`
	Scores       []int          `json:"scores,omitempty"`
}

type PlayersResponse struct {
	Items []game.Player `json:"items"`
}

type GamesResponse struct {
	Items []store.GameSummary `json:"items"`
}

// GameResponse is a game with its running totals per seat.
type GameResponse struct {
	game.Game
	Totals []int `json:"totals"`
}

// PlayerStatisticsResponse carries the per table size buckets and their sum.
// Net and the averages are taken over the sum.
type PlayerStatisticsResponse struct {
	Player         game.Player                    `json:"player"`
	ByPlayerCount  map[int]stats.PlayerCountStats `json:"by_player_count"`
	Total          stats.PlayerCountStats         `json:"total"`
	Net            int                            `json:"net"`
	AveragePerHand float64                        `json:"average_per_hand"`
	AveragePerGame float64                        `json:"average_per_game"`
}

type ImportResponse struct {
	Games int `json:"games"`
	Hands int `json:"hands"`
}
