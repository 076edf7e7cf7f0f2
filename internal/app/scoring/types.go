package scoring

import "tarot345/internal/game"

// HandRequest carries the facts of a hand that is not tied to a stored game.
// Contract is a name from the multiplier table; unknown names score with a
// multiplier of 1.
type HandRequest struct {
	Players      int              `json:"players"`
	Taker        int              `json:"taker"`
	Called       *int             `json:"called"`
	Contract     string           `json:"contract"`
	AttackPoints int              `json:"attack_points"`
	Bouts        int              `json:"bouts"`
	LastTrump    *int             `json:"last_trump"`
	Miseres      []int            `json:"miseres"`
	Handfuls     []HandfulRequest `json:"handfuls"`
	Slam         *game.Slam       `json:"slam"`
}

type HandfulRequest struct {
	Player int    `json:"player"`
	Tier   string `json:"tier"`
}

type VerifyRequest struct {
	HandRequest
	Scores []int `json:"scores"`
}

type ScoreResponse struct {
	Scores        []int `json:"scores"`
	ContractKnown bool  `json:"contract_known"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type HandfulRequirement struct {
	Tier   string `json:"tier"`
	Value  int    `json:"value"`
	Trumps int    `json:"trumps"`
}

type RulesResponse struct {
	Rules game.Rules `json:"rules"`
	// Handfuls lists, per table size, what each tier is worth and requires.
	Handfuls map[int][]HandfulRequirement `json:"handfuls"`
}
