// Package simulate builds synthetic score-sheet histories for demos, load
// tests and seeding a fresh database. Every generated hand is scored by the
// engine and checked with VerifyScores before it is kept.
package simulate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"tarot345/internal/game"
)

var ErrSelfCheck = errors.New("self_check_failed")

var firstNames = []string{
	"anne", "bruno", "chloé", "david", "élise", "françois", "gaëlle", "hugo",
	"inès", "julien", "karine", "louis", "margot", "nicolas", "océane", "pierre",
}

type Options struct {
	Games      int
	MaxHands   int
	RosterSize int
	Seed       int64
	// End is the date of the last generated game. Games are spread evenly
	// over Span before it.
	End  time.Time
	Span time.Duration
}

type Generator struct {
	rules   game.Rules
	opts    Options
	rng     *rand.Rand
	entropy *ulid.MonotonicEntropy
}

func New(rules game.Rules, opts Options) (*Generator, error) {
	switch {
	case opts.Games < 0:
		return nil, fmt.Errorf("games must not be negative, got %d", opts.Games)
	case opts.MaxHands < 1:
		return nil, fmt.Errorf("max hands must be at least 1, got %d", opts.MaxHands)
	case opts.RosterSize < game.MaxPlayers || opts.RosterSize > len(firstNames):
		return nil, fmt.Errorf("roster size must be in [%d,%d], got %d", game.MaxPlayers, len(firstNames), opts.RosterSize)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if opts.End.IsZero() {
		opts.End = time.Now().UTC()
	}
	if opts.Span <= 0 {
		opts.Span = 2 * 365 * 24 * time.Hour
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Generator{
		rules:   rules,
		opts:    opts,
		rng:     rng,
		entropy: ulid.Monotonic(rng, 0),
	}, nil
}

func (g *Generator) id(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

// History generates the whole history. The same seed and options always
// yield the same history once Options.End is set; a zero End means now.
func (g *Generator) History() (game.History, error) {
	start := g.opts.End.Add(-g.opts.Span)
	roster := make([]game.Player, g.opts.RosterSize)
	for i := range roster {
		roster[i] = game.Player{ID: g.id(start), Name: game.FormatPlayerName(firstNames[i])}
	}

	var step time.Duration
	if g.opts.Games > 1 {
		step = g.opts.Span / time.Duration(g.opts.Games-1)
	}
	h := game.History{Games: make([]game.Game, 0, g.opts.Games)}
	for i := 0; i < g.opts.Games; i++ {
		at := g.opts.End.Add(-time.Duration(g.opts.Games-1-i) * step)
		gm, err := g.game(at, roster)
		if err != nil {
			return game.History{}, err
		}
		h.Games = append(h.Games, gm)
	}
	log.Info().Int("games", len(h.Games)).Int64("seed", g.opts.Seed).Msg("synthetic history generated")
	return h, nil
}

func (g *Generator) game(at time.Time, roster []game.Player) (game.Game, error) {
	n := game.MinPlayers + g.rng.Intn(game.MaxPlayers-game.MinPlayers+1)
	players := make([]game.Player, 0, n)
	for _, idx := range g.rng.Perm(len(roster))[:n] {
		players = append(players, roster[idx])
	}
	gm := game.Game{ID: g.id(at), CreatedAt: at, Players: players}

	hands := 1 + g.rng.Intn(g.opts.MaxHands)
	handAt := at
	for i := 0; i < hands; i++ {
		handAt = handAt.Add(time.Duration(5+g.rng.Intn(11)) * time.Minute)
		h := g.hand(n)
		h.ID = g.id(handAt)
		h.CreatedAt = handAt

		scores, err := game.ComputeScores(h.Facts(n), g.rules)
		if err != nil {
			return game.Game{}, fmt.Errorf("game %s hand %d: %w", gm.ID, i, err)
		}
		ok, err := game.VerifyScores(h.Facts(n), scores, g.rules)
		if err != nil {
			return game.Game{}, fmt.Errorf("game %s hand %d: %w", gm.ID, i, err)
		}
		if !ok {
			return game.Game{}, fmt.Errorf("%w: game %s hand %d scores %v", ErrSelfCheck, gm.ID, i, scores)
		}
		h.Scores = scores
		gm.Hands = append(gm.Hands, h)
	}
	return gm, nil
}

// contractSpread is how far below and above the threshold attack points
// are drawn for each contract. Bigger contracts are taken with better hands.
var contractSpread = [len(game.Contracts)][2]int{
	game.ContractPetite:      {-15, 20},
	game.ContractGarde:       {-10, 25},
	game.ContractGardeSans:   {-5, 30},
	game.ContractGardeContre: {0, 35},
}

func (g *Generator) hand(n int) game.Hand {
	h := game.Hand{
		Taker:    g.rng.Intn(n),
		Contract: game.Contracts[g.rng.Intn(len(game.Contracts))],
		Bouts:    g.rng.Intn(4),
	}
	if n == game.MaxPlayers {
		if g.chance(0.25) {
			h.Called = game.Some(h.Taker)
		} else {
			called := g.rng.Intn(n - 1)
			if called >= h.Taker {
				called++
			}
			h.Called = game.Some(called)
		}
	}

	spread := contractSpread[h.Contract]
	threshold := g.rules.Threshold(h.Bouts)
	h.AttackPoints = clamp(threshold+spread[0]+g.rng.Intn(spread[1]-spread[0]), 20, game.MaxAttackPoints)

	if g.chance(0.25) {
		h.LastTrump = game.Some(g.rng.Intn(n))
	}

	if g.chance(0.25) {
		count := 1
		if g.chance(0.5) {
			count = n - 1
		}
		h.Miseres = g.rng.Perm(n)[:count]
	}

	if g.chance(0.5) && n > 2 {
		for _, seat := range g.rng.Perm(n)[:1+g.rng.Intn(n-2)] {
			if tier := g.handfulTier(); tier != game.HandfulNone {
				h.Handfuls = append(h.Handfuls, game.Handful{Player: seat, Tier: tier})
			}
		}
	}

	if g.chance(0.05) {
		r := g.rng.Float64()
		switch {
		case r < 0.05:
			h.Slam = &game.Slam{Announced: true, Succeeded: true}
		case r < 0.20:
			h.Slam = &game.Slam{Announced: true}
		default:
			h.Slam = &game.Slam{Succeeded: true}
		}
	}
	return h
}

func (g *Generator) handfulTier() game.HandfulTier {
	r := g.rng.Float64()
	switch {
	case r < 0.5:
		return game.HandfulNone
	case r < 0.85:
		return game.HandfulSimple
	case r < 0.95:
		return game.HandfulDouble
	default:
		return game.HandfulTriple
	}
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
