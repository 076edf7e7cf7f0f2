package stats

import "tarot345/internal/game"

// Tally holds the counters shared by the per-player, per-game and global
// views. Contracts and Handfuls are indexed by game.Contract and
// game.HandfulTier, Slams by game.SlamOutcome.
type Tally struct {
	Contracts     [len(game.Contracts)]int    `json:"contracts"`
	Handfuls      [len(game.HandfulTiers)]int `json:"handfuls"`
	Slams         [game.SlamBuckets]int       `json:"slams"`
	Miseres       int                         `json:"miseres"`
	LastTrumpWon  int                         `json:"last_trump_won"`
	LastTrumpLost int                         `json:"last_trump_lost"`
	PointsWon     int                         `json:"points_won"`
	// PointsLost is the sum of negative scores, so it is never positive.
	PointsLost int `json:"points_lost"`
	BestScore  int `json:"best_score"`
	WorstScore int `json:"worst_score"`
}

// Net is the balance of every recorded score.
func (t Tally) Net() int {
	return t.PointsWon + t.PointsLost
}

// merge adds o into t. Extremes are only taken from o when it recorded at
// least one score.
func (t *Tally) merge(o Tally, scored, oScored bool) {
	for i := range t.Contracts {
		t.Contracts[i] += o.Contracts[i]
	}
	for i := range t.Handfuls {
		t.Handfuls[i] += o.Handfuls[i]
	}
	for i := range t.Slams {
		t.Slams[i] += o.Slams[i]
	}
	t.Miseres += o.Miseres
	t.LastTrumpWon += o.LastTrumpWon
	t.LastTrumpLost += o.LastTrumpLost
	t.PointsWon += o.PointsWon
	t.PointsLost += o.PointsLost
	if !oScored {
		return
	}
	if !scored || o.BestScore > t.BestScore {
		t.BestScore = o.BestScore
	}
	if !scored || o.WorstScore < t.WorstScore {
		t.WorstScore = o.WorstScore
	}
}

// PlayerCountStats are one player's totals over games of a single table size.
type PlayerCountStats struct {
	Tally
	Taker    int `json:"taker"`
	Called   int `json:"called"`
	Defender int `json:"defender"`
	Hands    int `json:"hands"`
	Games    int `json:"games"`
}

func (s PlayerCountStats) AveragePerHand() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Net()) / float64(s.Hands)
}

func (s PlayerCountStats) AveragePerGame() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Net()) / float64(s.Games)
}

// PlayerStats keeps the 3, 4 and 5 player buckets apart. All three keys are
// always present.
type PlayerStats struct {
	ByPlayerCount map[int]PlayerCountStats `json:"by_player_count"`
}

// Total sums the three table-size buckets.
func (p PlayerStats) Total() PlayerCountStats {
	var total PlayerCountStats
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		s := p.ByPlayerCount[n]
		total.Tally.merge(s.Tally, total.Hands > 0, s.Hands > 0)
		total.Taker += s.Taker
		total.Called += s.Called
		total.Defender += s.Defender
		total.Hands += s.Hands
		total.Games += s.Games
	}
	return total
}

type GameStats struct {
	GameID      string `json:"game_id"`
	PlayerCount int    `json:"player_count"`
	Hands       int    `json:"hands"`
	BoutsAttack int    `json:"bouts_attack"`
	Tally
}

type GlobalStats struct {
	Games       int `json:"games"`
	Hands       int `json:"hands"`
	BoutsAttack int `json:"bouts_attack"`
	Tally
}

type Report struct {
	Players map[string]PlayerStats `json:"players"`
	Games   []GameStats            `json:"games"`
	Global  GlobalStats            `json:"global"`
}

// Game returns the statistics of one game of the report.
func (r Report) Game(id string) (GameStats, bool) {
	for _, g := range r.Games {
		if g.GameID == id {
			return g, true
		}
	}
	return GameStats{}, false
}
