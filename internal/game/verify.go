package game

import (
	"slices"

	"github.com/rs/zerolog/log"
)

// VerifyScores reports whether scores is exactly what ComputeScores would
// produce for the same facts. It peels every contribution off a copy of the
// vector, checking the residual keeps a legal redistribution shape after
// each step. A false result is a signal, not an error; errors are reserved
// for facts that cannot be scored at all.
func VerifyScores(f HandFacts, scores []int, rules Rules) (bool, error) {
	if err := rules.Validate(); err != nil {
		return false, err
	}
	if err := f.Validate(); err != nil {
		return false, err
	}
	if len(scores) != f.Players {
		return reject("length"), nil
	}

	topo := f.Topology()
	residual := slices.Clone(scores)

	if len(f.Miseres) > 0 {
		for _, seat := range f.Miseres {
			applyMisere(residual, seat, -rules.MiserePenalty)
		}
		if !hasTopologyShape(residual, topo) {
			return reject("miseres"), nil
		}
	}

	o := evaluate(f, rules)
	c := contributionsFor(f, rules, o)

	applyPoints(residual, topo, -c.base)
	if !hasTopologyShape(residual, topo) {
		return reject("base"), nil
	}

	if f.LastTrump.Present() {
		if c.lastTrump != 0 {
			applyPoints(residual, topo, -c.lastTrump)
		}
		if !hasTopologyShape(residual, topo) {
			return reject("last_trump"), nil
		}
	}

	if len(f.Handfuls) > 0 {
		for _, v := range c.handfuls {
			applyPoints(residual, topo, -v)
		}
		if !hasTopologyShape(residual, topo) {
			return reject("handfuls"), nil
		}
	}

	if f.Slam != nil {
		if c.slam != 0 {
			applyPoints(residual, topo, -c.slam)
		}
		if !hasTopologyShape(residual, topo) {
			return reject("slam"), nil
		}
	}

	for _, v := range residual {
		if v != 0 {
			return reject("residual"), nil
		}
	}
	return true, nil
}

func reject(step string) bool {
	metricVerifyFailures.Add(1)
	log.Debug().Str("step", step).Msg("score verification failed")
	return false
}

// hasTopologyShape checks the multiset of absolute values against the
// redistribution table: all defenders share the smallest magnitude and the
// largest magnitude is the taker's multiple of it.
func hasTopologyShape(scores []int, t Topology) bool {
	abs := make([]int, len(scores))
	for i, v := range scores {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}
	slices.Sort(abs)

	var equal, factor int
	switch {
	case t.Players == 5 && t.Solo():
		equal, factor = 4, 4
	case t.Players == 5:
		equal, factor = 4, 2
	case t.Players == 4:
		equal, factor = 3, 3
	case t.Players == 3:
		equal, factor = 2, 2
	default:
		return false
	}
	if len(abs) != equal+1 {
		return false
	}
	v := abs[0]
	for _, x := range abs[:equal] {
		if x != v {
			return false
		}
	}
	return abs[equal] == v*factor
}
