package game

import (
	"slices"
	"testing"
)

func TestVerifyScoresAcceptsComputedScores(t *testing.T) {
	rules := DefaultRules()
	for _, tc := range allCases() {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := ComputeScores(tc.facts, rules)
			if err != nil {
				t.Fatalf("ComputeScores() error = %v", err)
			}
			ok, err := VerifyScores(tc.facts, scores, rules)
			if err != nil {
				t.Fatalf("VerifyScores() error = %v", err)
			}
			if !ok {
				t.Fatalf("VerifyScores(%v) = false, want true", scores)
			}
		})
	}
}

func TestVerifyScoresRejectsEditedScores(t *testing.T) {
	rules := DefaultRules()
	facts := HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 49, LastTrump: Some(0), Handfuls: simple(0)}
	tests := []struct {
		name   string
		scores []int
	}{
		{"one point moved", []int{213, -107, -106}},
		{"right shape wrong amount", []int{214, -107, -107}},
		{"sign flipped", []int{-212, 106, 106}},
		{"wrong taker", []int{-106, 212, -106}},
		{"all zero", []int{0, 0, 0}},
		{"too short", []int{212, -212}},
		{"too long", []int{212, -106, -106, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyScores(facts, tt.scores, rules)
			if err != nil {
				t.Fatalf("VerifyScores() error = %v", err)
			}
			if ok {
				t.Fatalf("VerifyScores(%v) = true, want false", tt.scores)
			}
		})
	}
}

func TestVerifyScoresRejectsMissingMisere(t *testing.T) {
	rules := DefaultRules()
	withMisere := HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 49, Miseres: []int{3}}
	scores, err := ComputeScores(withMisere, rules)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	withoutMisere := withMisere
	withoutMisere.Miseres = nil
	ok, err := VerifyScores(withoutMisere, scores, rules)
	if err != nil {
		t.Fatalf("VerifyScores() error = %v", err)
	}
	if ok {
		t.Fatalf("scores with a misere verified against facts without one")
	}
}

func TestVerifyScoresDoesNotMutateInput(t *testing.T) {
	rules := DefaultRules()
	facts := fivePlayerCases()[0].facts
	scores := []int{212, 106, -106, -106, -106}
	orig := slices.Clone(scores)
	if _, err := VerifyScores(facts, scores, rules); err != nil {
		t.Fatalf("VerifyScores() error = %v", err)
	}
	if !slices.Equal(scores, orig) {
		t.Fatalf("scores mutated: %v, want %v", scores, orig)
	}
}

func TestVerifyScoresInvalidFacts(t *testing.T) {
	_, err := VerifyScores(HandFacts{Players: 5, Contract: "Garde"}, []int{0, 0, 0, 0, 0}, DefaultRules())
	if !IsInvalidHand(err) {
		t.Fatalf("error = %v, want invalid hand", err)
	}
}

func TestHasTopologyShape(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		topo   Topology
		want   bool
	}{
		{"three players", []int{-10, 20, -10}, Topology{Players: 3, Taker: 1}, true},
		{"three players wrong ratio", []int{-10, 30, -20}, Topology{Players: 3, Taker: 1}, false},
		{"four players", []int{30, -10, -10, -10}, Topology{Players: 4}, true},
		{"four players shaped like three", []int{20, -10, -10, 0}, Topology{Players: 4}, false},
		{"five players called", []int{20, 10, -10, -10, -10}, Topology{Players: 5, Called: Some(1)}, true},
		{"five players solo", []int{40, -10, -10, -10, -10}, Topology{Players: 5, Called: Some(0)}, true},
		{"five players solo shaped as called", []int{20, 10, -10, -10, -10}, Topology{Players: 5, Called: Some(0)}, false},
		{"all zero", []int{0, 0, 0, 0, 0}, Topology{Players: 5, Called: Some(2)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasTopologyShape(tt.scores, tt.topo); got != tt.want {
				t.Fatalf("hasTopologyShape(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		})
	}
}
