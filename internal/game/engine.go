package game

import (
	"expvar"

	"github.com/rs/zerolog/log"
)

var (
	metricScoresComputed   = expvar.NewInt("scores_computed_total")
	metricVerifyFailures   = expvar.NewInt("scores_verify_failures_total")
	metricContractFallback = expvar.NewInt("contract_fallback_total")
)

// HandFacts are the resolved facts of one hand, as entered at the table.
type HandFacts struct {
	Players      int
	Taker        int
	Called       OptIndex
	Miseres      []int
	AttackPoints int
	Bouts        int
	LastTrump    OptIndex
	Contract     string
	Handfuls     []Handful
	Slam         *Slam
}

func (f HandFacts) Topology() Topology {
	return Topology{Players: f.Players, Taker: f.Taker, Called: f.Called}
}

func (f HandFacts) Validate() error {
	if err := f.Topology().Validate(); err != nil {
		return err
	}
	if f.AttackPoints < 0 || f.AttackPoints > MaxAttackPoints {
		return invalidHand("attack_points", "%d not in [0,%d]", f.AttackPoints, MaxAttackPoints)
	}
	if seat, ok := f.LastTrump.Get(); ok && (seat < 0 || seat >= f.Players) {
		return invalidHand("last_trump", "index %d out of range", seat)
	}
	for _, seat := range f.Miseres {
		if seat < 0 || seat >= f.Players {
			return invalidHand("miseres", "index %d out of range", seat)
		}
	}
	for _, h := range f.Handfuls {
		if h.Player < 0 || h.Player >= f.Players {
			return invalidHand("handfuls", "index %d out of range", h.Player)
		}
		if !h.Tier.Valid() {
			return invalidHand("handfuls", "unknown tier %d", int(h.Tier))
		}
	}
	return nil
}

// outcome is the part of the computation shared by scoring and verification.
type outcome struct {
	multiplier int
	known      bool
	attackWins bool
	base       int
}

func evaluate(f HandFacts, rules Rules) outcome {
	multiplier, known := rules.Multiplier(f.Contract)
	threshold := rules.Threshold(f.Bouts)
	delta := f.AttackPoints - threshold
	margin := delta
	if margin < 0 {
		margin = -margin
	}
	return outcome{
		multiplier: multiplier,
		known:      known,
		attackWins: delta >= 0,
		base:       (rules.BaseConst + margin) * multiplier,
	}
}

func (o outcome) sign() int {
	if o.attackWins {
		return 1
	}
	return -1
}

// contributions lists, in application order, the amounts routed through the
// redistribution table: base points, last trump, each handful, slam.
// Zero amounts are dropped.
type contributions struct {
	base      int
	lastTrump int
	handfuls  []int
	slam      int
}

func contributionsFor(f HandFacts, rules Rules, o outcome) contributions {
	c := contributions{base: o.base * o.sign()}
	if seat, ok := f.LastTrump.Get(); ok {
		bonus := rules.LastTrumpBonus * o.multiplier
		if !f.Topology().Attacker(seat) {
			bonus = -bonus
		}
		c.lastTrump = bonus
	}
	for _, h := range f.Handfuls {
		if h.Tier == HandfulNone {
			continue
		}
		// The sign follows the hand's result, not the declarer's side.
		if v := rules.HandfulValue(h.Tier); v != 0 {
			c.handfuls = append(c.handfuls, v*o.sign())
		}
	}
	if f.Slam != nil {
		c.slam = rules.SlamBonus(f.Slam.Outcome())
	}
	return c
}

// ComputeScores returns the signed score of every seat for one hand.
// The result always sums to zero.
func ComputeScores(f HandFacts, rules Rules) ([]int, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	topo := f.Topology()
	o := evaluate(f, rules)
	if !o.known {
		metricContractFallback.Add(1)
		log.Warn().Str("contract", f.Contract).Msg("unknown contract, multiplier defaults to 1")
	}
	c := contributionsFor(f, rules, o)
	scores := make([]int, f.Players)

	applyPoints(scores, topo, c.base)
	log.Debug().
		Int("threshold", rules.Threshold(f.Bouts)).
		Int("attack_points", f.AttackPoints).
		Bool("attack_wins", o.attackWins).
		Int("base", o.base).
		Ints("scores", scores).
		Msg("base points applied")

	if c.lastTrump != 0 {
		applyPoints(scores, topo, c.lastTrump)
		log.Debug().Int("bonus", c.lastTrump).Ints("scores", scores).Msg("last trump applied")
	}
	for _, v := range c.handfuls {
		applyPoints(scores, topo, v)
	}
	if len(c.handfuls) > 0 {
		log.Debug().Ints("scores", scores).Msg("handfuls applied")
	}
	if c.slam != 0 {
		applyPoints(scores, topo, c.slam)
		log.Debug().Int("bonus", c.slam).Ints("scores", scores).Msg("slam applied")
	}
	for _, seat := range f.Miseres {
		applyMisere(scores, seat, rules.MiserePenalty)
	}
	if len(f.Miseres) > 0 {
		log.Debug().Ints("miseres", f.Miseres).Ints("scores", scores).Msg("miseres applied")
	}

	metricScoresComputed.Add(1)
	return scores, nil
}

// applyMisere is a flat exchange: every other seat pays the declarer.
func applyMisere(scores []int, seat, penalty int) {
	for i := range scores {
		if i == seat {
			scores[i] += penalty * (len(scores) - 1)
		} else {
			scores[i] -= penalty
		}
	}
}
