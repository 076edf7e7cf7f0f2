package stats

import (
	"errors"
	"expvar"
	"fmt"

	"github.com/rs/zerolog/log"

	"tarot345/internal/game"
)

var ErrMalformedHistory = errors.New("malformed_history")

var metricStatsRuns = expvar.NewInt("stats_runs_total")

// tallyBuilder accumulates a Tally. Extremes are only meaningful once scored
// is set, so an untouched builder freezes to zero extremes.
type tallyBuilder struct {
	t      Tally
	scored bool
}

func (b *tallyBuilder) score(v int) {
	if v >= 0 {
		b.t.PointsWon += v
	} else {
		b.t.PointsLost += v
	}
	if !b.scored || v > b.t.BestScore {
		b.t.BestScore = v
	}
	if !b.scored || v < b.t.WorstScore {
		b.t.WorstScore = v
	}
	b.scored = true
}

func (b *tallyBuilder) lastTrump(won bool) {
	if won {
		b.t.LastTrumpWon++
	} else {
		b.t.LastTrumpLost++
	}
}

func (b *tallyBuilder) merge(o *tallyBuilder) {
	b.t.merge(o.t, b.scored, o.scored)
	b.scored = b.scored || o.scored
}

type playerCountBuilder struct {
	tallyBuilder
	taker, called, defender int
	hands, games            int
}

func (b *playerCountBuilder) freeze() PlayerCountStats {
	return PlayerCountStats{
		Tally:    b.t,
		Taker:    b.taker,
		Called:   b.called,
		Defender: b.defender,
		Hands:    b.hands,
		Games:    b.games,
	}
}

type playerBuilder map[int]*playerCountBuilder

func newPlayerBuilder() playerBuilder {
	b := make(playerBuilder, game.MaxPlayers-game.MinPlayers+1)
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		b[n] = &playerCountBuilder{}
	}
	return b
}

type gameBuilder struct {
	tallyBuilder
	bouts int
}

// Analyze aggregates a whole history into per-player, per-game and global
// statistics. Every call starts from empty accumulators; h is not modified.
// A hand that cannot be attributed to its game's seats fails the whole call.
func Analyze(h game.History) (Report, error) {
	metricStatsRuns.Add(1)

	players := make(map[string]playerBuilder)
	games := make([]GameStats, 0, len(h.Games))
	var global gameBuilder

	for _, g := range h.Games {
		if err := checkGame(g); err != nil {
			return Report{}, err
		}
		n := len(g.Players)
		seats := make([]*playerCountBuilder, n)
		for i, p := range g.Players {
			pb, ok := players[p.ID]
			if !ok {
				pb = newPlayerBuilder()
				players[p.ID] = pb
			}
			seats[i] = pb[n]
			seats[i].games++
			seats[i].hands += len(g.Hands)
		}

		var gb gameBuilder
		for _, hand := range g.Hands {
			tallyHand(hand, seats, &gb)
		}

		games = append(games, GameStats{
			GameID:      g.ID,
			PlayerCount: n,
			Hands:       len(g.Hands),
			BoutsAttack: gb.bouts,
			Tally:       gb.t,
		})
		global.merge(&gb.tallyBuilder)
		global.bouts += gb.bouts
	}

	report := Report{
		Players: make(map[string]PlayerStats, len(players)),
		Games:   games,
		Global: GlobalStats{
			Games:       len(games),
			BoutsAttack: global.bouts,
			Tally:       global.t,
		},
	}
	for _, g := range games {
		report.Global.Hands += g.Hands
	}
	for id, pb := range players {
		byCount := make(map[int]PlayerCountStats, len(pb))
		for n, b := range pb {
			byCount[n] = b.freeze()
		}
		report.Players[id] = PlayerStats{ByPlayerCount: byCount}
	}

	log.Debug().
		Int("games", report.Global.Games).
		Int("hands", report.Global.Hands).
		Int("players", len(report.Players)).
		Msg("history analyzed")
	return report, nil
}

// tallyHand attributes one validated hand to the seats of its game and to
// the game itself.
func tallyHand(h game.Hand, seats []*playerCountBuilder, gb *gameBuilder) {
	n := len(seats)
	called, hasCalled := h.Called.Get()
	hasCalled = hasCalled && n == game.MaxPlayers
	// Without a called seat at five players the taker plays alone.
	attacker := func(seat int) bool {
		return seat == h.Taker || (hasCalled && seat == called)
	}

	taker := seats[h.Taker]
	taker.taker++
	if hasCalled {
		seats[called].called++
	}
	for seat, b := range seats {
		if !attacker(seat) {
			b.defender++
		}
	}

	for seat, v := range h.Scores {
		seats[seat].score(v)
		gb.score(v)
	}
	gb.bouts += h.Bouts

	if seat, ok := h.LastTrump.Get(); ok {
		won := attacker(seat)
		seats[seat].lastTrump(won)
		gb.lastTrump(won)
	}

	for _, seat := range h.Miseres {
		seats[seat].t.Miseres++
		gb.t.Miseres++
	}

	if h.Contract.Valid() {
		taker.t.Contracts[h.Contract]++
		gb.t.Contracts[h.Contract]++
	}

	if h.Slam != nil {
		// A recorded slam that was neither announced nor made lands in the
		// unannounced bucket.
		o := h.Slam.Outcome()
		if o == game.SlamNone {
			o = game.SlamUnannouncedSuccess
		}
		taker.t.Slams[o]++
		if hasCalled && called != h.Taker {
			seats[called].t.Slams[o]++
		}
		gb.t.Slams[o]++
	}

	for _, hf := range h.Handfuls {
		if hf.Tier == game.HandfulNone || !hf.Tier.Valid() {
			continue
		}
		seats[hf.Player].t.Handfuls[hf.Tier]++
		gb.t.Handfuls[hf.Tier]++
	}
}

func checkGame(g game.Game) error {
	n := len(g.Players)
	if !game.ValidPlayerCount(n) {
		return fmt.Errorf("%w: game %s: %d players", ErrMalformedHistory, g.ID, n)
	}
	for _, h := range g.Hands {
		if err := checkHand(h, n); err != nil {
			return fmt.Errorf("%w: game %s hand %s: %w", ErrMalformedHistory, g.ID, h.ID, err)
		}
	}
	return nil
}

func checkHand(h game.Hand, n int) error {
	inRange := func(seat int) bool { return seat >= 0 && seat < n }
	bad := func(field string, format string, args ...any) error {
		return &game.InvalidHandError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	if !inRange(h.Taker) {
		return bad("taker", "index %d out of range", h.Taker)
	}
	if seat, ok := h.Called.Get(); ok && n == game.MaxPlayers && !inRange(seat) {
		return bad("called", "index %d out of range", seat)
	}
	if seat, ok := h.LastTrump.Get(); ok && !inRange(seat) {
		return bad("last_trump", "index %d out of range", seat)
	}
	for _, seat := range h.Miseres {
		if !inRange(seat) {
			return bad("miseres", "index %d out of range", seat)
		}
	}
	for _, hf := range h.Handfuls {
		if !inRange(hf.Player) {
			return bad("handfuls", "index %d out of range", hf.Player)
		}
	}
	if len(h.Scores) != n {
		return bad("scores", "%d scores for %d players", len(h.Scores), n)
	}
	return nil
}
