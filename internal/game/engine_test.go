package game

import (
	"errors"
	"slices"
	"testing"
)

type scoreCase struct {
	name  string
	facts HandFacts
	want  []int
}

func simple(seat int) []Handful { return []Handful{{Player: seat, Tier: HandfulSimple}} }

func threePlayerCases() []scoreCase {
	return []scoreCase{
		{"garde won with last trump and handful", HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 49, LastTrump: Some(0), Handfuls: simple(0)}, []int{212, -106, -106}},
		{"garde sans last trump lost", HandFacts{Players: 3, Contract: "Garde Sans", Bouts: 2, AttackPoints: 45, LastTrump: Some(2)}, []int{152, -76, -76}},
		{"petite lost", HandFacts{Players: 3, Contract: "Petite", Bouts: 2, AttackPoints: 34, LastTrump: Some(0), Handfuls: simple(0)}, []int{-84, 42, 42}},
		{"defence handful follows result", HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 52, Handfuls: simple(1)}, []int{184, -92, -92}},
		{"announced slam made", HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 87, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Announced: true, Succeeded: true}}, []int{1164, -582, -582}},
		{"unannounced slam made", HandFacts{Players: 3, Contract: "Garde Sans", Bouts: 3, AttackPoints: 91, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Succeeded: true}}, []int{1160, -580, -580}},
		{"announced slam failed", HandFacts{Players: 3, Contract: "Garde Sans", Bouts: 2, AttackPoints: 80, LastTrump: Some(2), Handfuls: simple(0), Slam: &Slam{Announced: true}}, []int{72, -36, -36}},
		{"miseres on won garde", HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 58, Miseres: []int{1, 2}, LastTrump: Some(2), Handfuls: []Handful{{Player: 0, Tier: HandfulDouble}}}, []int{168, -84, -84}},
		{"miseres on lost garde", HandFacts{Players: 3, Contract: "Garde", Bouts: 2, AttackPoints: 36, Miseres: []int{1, 2}, LastTrump: Some(0), Handfuls: simple(0)}, []int{-140, 70, 70}},
	}
}

func fourPlayerCases() []scoreCase {
	return []scoreCase{
		{"garde won with bonuses", HandFacts{Players: 4, Contract: "Garde", Bouts: 2, AttackPoints: 49, LastTrump: Some(0), Handfuls: simple(0)}, []int{318, -106, -106, -106}},
		{"petite lost with misere", HandFacts{Players: 4, Contract: "Petite", Bouts: 0, AttackPoints: 50, LastTrump: Some(1), Miseres: []int{3}}, []int{-133, 31, 31, 71}},
		{"garde contre at threshold with failed slam", HandFacts{Players: 4, Taker: 2, Contract: "Garde Contre", Bouts: 1, AttackPoints: 51, Slam: &Slam{Announced: true}}, []int{50, 50, -150, 50}},
	}
}

func fivePlayerCases() []scoreCase {
	double := []Handful{{Player: 0, Tier: HandfulDouble}}
	twoSimple := []Handful{{Player: 1, Tier: HandfulSimple}, {Player: 2, Tier: HandfulSimple}}
	return []scoreCase{
		{"called garde won", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 49, LastTrump: Some(0), Handfuls: simple(0)}, []int{212, 106, -106, -106, -106}},
		{"solo garde won", HandFacts{Players: 5, Called: Some(0), Contract: "Garde", Bouts: 2, AttackPoints: 49, LastTrump: Some(0), Handfuls: simple(0)}, []int{424, -106, -106, -106, -106}},
		{"called garde sans", HandFacts{Players: 5, Called: Some(1), Contract: "Garde Sans", Bouts: 2, AttackPoints: 45, LastTrump: Some(2)}, []int{152, 76, -76, -76, -76}},
		{"solo garde sans", HandFacts{Players: 5, Called: Some(0), Contract: "Garde Sans", Bouts: 2, AttackPoints: 45, LastTrump: Some(2)}, []int{304, -76, -76, -76, -76}},
		{"called petite lost", HandFacts{Players: 5, Called: Some(1), Contract: "Petite", Bouts: 2, AttackPoints: 34, LastTrump: Some(0), Handfuls: simple(0)}, []int{-84, -42, 42, 42, 42}},
		{"solo petite lost", HandFacts{Players: 5, Called: Some(0), Contract: "Petite", Bouts: 2, AttackPoints: 34, LastTrump: Some(0), Handfuls: simple(0)}, []int{-168, 42, 42, 42, 42}},
		{"called defence handful", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 52, Handfuls: simple(1)}, []int{184, 92, -92, -92, -92}},
		{"solo defence handful", HandFacts{Players: 5, Called: Some(0), Contract: "Garde", Bouts: 2, AttackPoints: 52, Handfuls: simple(1)}, []int{368, -92, -92, -92, -92}},
		{"called announced slam", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 87, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Announced: true, Succeeded: true}}, []int{1164, 582, -582, -582, -582}},
		{"solo announced slam", HandFacts{Players: 5, Called: Some(0), Contract: "Garde", Bouts: 2, AttackPoints: 87, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Announced: true, Succeeded: true}}, []int{2328, -582, -582, -582, -582}},
		{"called unannounced slam", HandFacts{Players: 5, Called: Some(1), Contract: "Garde Sans", Bouts: 3, AttackPoints: 91, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Succeeded: true}}, []int{1160, 580, -580, -580, -580}},
		{"solo unannounced slam", HandFacts{Players: 5, Called: Some(0), Contract: "Garde Sans", Bouts: 3, AttackPoints: 91, LastTrump: Some(0), Handfuls: simple(0), Slam: &Slam{Succeeded: true}}, []int{2320, -580, -580, -580, -580}},
		{"called failed slam", HandFacts{Players: 5, Called: Some(1), Contract: "Garde Sans", Bouts: 2, AttackPoints: 80, LastTrump: Some(2), Handfuls: simple(0), Slam: &Slam{Announced: true}}, []int{72, 36, -36, -36, -36}},
		{"solo failed slam", HandFacts{Players: 5, Called: Some(0), Contract: "Garde Sans", Bouts: 2, AttackPoints: 80, LastTrump: Some(2), Handfuls: simple(0), Slam: &Slam{Announced: true}}, []int{144, -36, -36, -36, -36}},
		{"called miseres", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 58, Miseres: []int{1, 2}, LastTrump: Some(2), Handfuls: double}, []int{168, 124, -64, -114, -114}},
		{"solo miseres", HandFacts{Players: 5, Called: Some(0), Contract: "Garde", Bouts: 2, AttackPoints: 58, Miseres: []int{1, 2}, LastTrump: Some(2), Handfuls: double}, []int{356, -64, -64, -114, -114}},
		{"called miseres on lost garde", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 36, Miseres: []int{1, 2}, LastTrump: Some(1), Handfuls: twoSimple}, []int{-180, -50, 110, 60, 60}},
		{"solo miseres on lost garde", HandFacts{Players: 5, Called: Some(0), Contract: "Garde", Bouts: 2, AttackPoints: 36, Miseres: []int{1, 2}, LastTrump: Some(1), Handfuls: twoSimple}, []int{-500, 150, 150, 100, 100}},
		{"called won with miseres", HandFacts{Players: 5, Called: Some(1), Contract: "Garde", Bouts: 2, AttackPoints: 49, Miseres: []int{1, 2}, LastTrump: Some(0), Handfuls: simple(0)}, []int{192, 136, -76, -126, -126}},
	}
}

func allCases() []scoreCase {
	var out []scoreCase
	out = append(out, threePlayerCases()...)
	out = append(out, fourPlayerCases()...)
	out = append(out, fivePlayerCases()...)
	return out
}

func TestComputeScores(t *testing.T) {
	rules := DefaultRules()
	for _, tc := range allCases() {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeScores(tc.facts, rules)
			if err != nil {
				t.Fatalf("ComputeScores() error = %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("scores = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeScoresSumsToZero(t *testing.T) {
	rules := DefaultRules()
	for _, tc := range allCases() {
		got, err := ComputeScores(tc.facts, rules)
		if err != nil {
			t.Fatalf("%s: ComputeScores() error = %v", tc.name, err)
		}
		sum := 0
		for _, v := range got {
			sum += v
		}
		if sum != 0 {
			t.Fatalf("%s: sum = %d, want 0 (%v)", tc.name, sum, got)
		}
	}
}

func TestComputeScoresSingleContributionShape(t *testing.T) {
	rules := DefaultRules()
	for _, topo := range []Topology{
		{Players: 3, Taker: 1},
		{Players: 4, Taker: 3},
		{Players: 5, Taker: 2, Called: Some(4)},
		{Players: 5, Taker: 2, Called: Some(2)},
	} {
		for points := 0; points <= MaxAttackPoints; points += 7 {
			f := HandFacts{Players: topo.Players, Taker: topo.Taker, Called: topo.Called, Contract: "Garde", Bouts: 1, AttackPoints: points}
			got, err := ComputeScores(f, rules)
			if err != nil {
				t.Fatalf("ComputeScores(%+v) error = %v", f, err)
			}
			if !hasTopologyShape(got, topo) {
				t.Fatalf("scores %v do not match topology %+v", got, topo)
			}
		}
	}
}

func TestComputeScoresUnknownContractFallsBackToOne(t *testing.T) {
	before := metricContractFallback.Value()
	got, err := ComputeScores(HandFacts{Players: 3, Contract: "Garde Pouce", Bouts: 2, AttackPoints: 49}, DefaultRules())
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	if want := []int{66, -33, -33}; !slices.Equal(got, want) {
		t.Fatalf("scores = %v, want %v", got, want)
	}
	if metricContractFallback.Value() != before+1 {
		t.Fatalf("contract_fallback_total = %d, want %d", metricContractFallback.Value(), before+1)
	}
}

func TestVerifyScoresDoesNotCountContractFallback(t *testing.T) {
	f := HandFacts{Players: 3, Contract: "Garde Pouce", Bouts: 2, AttackPoints: 49}
	before := metricContractFallback.Value()
	ok, err := VerifyScores(f, []int{66, -33, -33}, DefaultRules())
	if err != nil {
		t.Fatalf("VerifyScores() error = %v", err)
	}
	if !ok {
		t.Fatal("VerifyScores() = false, want true")
	}
	if metricContractFallback.Value() != before {
		t.Fatalf("contract_fallback_total = %d, want %d", metricContractFallback.Value(), before)
	}
}

func TestComputeScoresClampsBouts(t *testing.T) {
	rules := DefaultRules()
	high, err := ComputeScores(HandFacts{Players: 3, Contract: "Petite", Bouts: 9, AttackPoints: 36}, rules)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	if want := []int{50, -25, -25}; !slices.Equal(high, want) {
		t.Fatalf("bouts above table: scores = %v, want %v", high, want)
	}
	low, err := ComputeScores(HandFacts{Players: 3, Contract: "Petite", Bouts: -2, AttackPoints: 56}, rules)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	if want := []int{50, -25, -25}; !slices.Equal(low, want) {
		t.Fatalf("bouts below table: scores = %v, want %v", low, want)
	}
}

func TestComputeScoresIgnoresNoneHandfulsAndMissingTiers(t *testing.T) {
	rules := DefaultRules()
	rules.HandfulValues = map[string]int{"SIMPLE": 20}
	f := HandFacts{Players: 3, Contract: "Petite", Bouts: 2, AttackPoints: 41, Handfuls: []Handful{
		{Player: 0, Tier: HandfulNone},
		{Player: 1, Tier: HandfulTriple},
	}}
	got, err := ComputeScores(f, rules)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	if want := []int{50, -25, -25}; !slices.Equal(got, want) {
		t.Fatalf("scores = %v, want %v", got, want)
	}
}

func TestComputeScoresUsesConfiguredMiserePenalty(t *testing.T) {
	rules := DefaultRules()
	rules.MiserePenalty = 5
	got, err := ComputeScores(HandFacts{Players: 3, Contract: "Petite", Bouts: 2, AttackPoints: 41, Miseres: []int{2}}, rules)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	if want := []int{45, -30, -15}; !slices.Equal(got, want) {
		t.Fatalf("scores = %v, want %v", got, want)
	}
}

func TestComputeScoresRejectsInvalidHands(t *testing.T) {
	tests := []struct {
		name  string
		facts HandFacts
		field string
	}{
		{"two players", HandFacts{Players: 2, Contract: "Garde"}, "players"},
		{"six players", HandFacts{Players: 6, Contract: "Garde"}, "players"},
		{"taker out of range", HandFacts{Players: 3, Taker: 3, Contract: "Garde"}, "taker"},
		{"five players without call", HandFacts{Players: 5, Contract: "Garde"}, "called"},
		{"call with four players", HandFacts{Players: 4, Called: Some(1), Contract: "Garde"}, "called"},
		{"called out of range", HandFacts{Players: 5, Called: Some(5), Contract: "Garde"}, "called"},
		{"negative attack points", HandFacts{Players: 3, AttackPoints: -1, Contract: "Garde"}, "attack_points"},
		{"too many attack points", HandFacts{Players: 3, AttackPoints: 92, Contract: "Garde"}, "attack_points"},
		{"last trump out of range", HandFacts{Players: 4, LastTrump: Some(4), Contract: "Garde"}, "last_trump"},
		{"misere out of range", HandFacts{Players: 4, Miseres: []int{-1}, Contract: "Garde"}, "miseres"},
		{"handful seat out of range", HandFacts{Players: 4, Handfuls: simple(7), Contract: "Garde"}, "handfuls"},
		{"handful tier unknown", HandFacts{Players: 4, Handfuls: []Handful{{Player: 0, Tier: HandfulTier(9)}}, Contract: "Garde"}, "handfuls"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeScores(tt.facts, DefaultRules())
			var invalid *InvalidHandError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want *InvalidHandError", err)
			}
			if invalid.Field != tt.field {
				t.Fatalf("field = %q, want %q", invalid.Field, tt.field)
			}
		})
	}
}

func TestComputeScoresRejectsEmptyThresholds(t *testing.T) {
	rules := DefaultRules()
	rules.BoutThresholds = nil
	if _, err := ComputeScores(HandFacts{Players: 3, Contract: "Garde"}, rules); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("error = %v, want ErrInvalidRules", err)
	}
}
