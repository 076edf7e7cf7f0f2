package game

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestOptIndexDistinguishesZeroFromAbsent(t *testing.T) {
	if None.Present() || None.Is(0) {
		t.Fatal("None must not match seat 0")
	}
	if !Some(0).Is(0) {
		t.Fatal("Some(0) must match seat 0")
	}
	if OptFromPtr(nil).Present() {
		t.Fatal("nil pointer must be absent")
	}
	if p := Some(0).Ptr(); p == nil || *p != 0 {
		t.Fatalf("Some(0).Ptr() = %v", p)
	}
}

func TestHandJSON(t *testing.T) {
	h := Hand{
		ID:        "h1",
		Taker:     0,
		Called:    Some(0),
		Contract:  ContractGardeSans,
		Handfuls:  []Handful{{Player: 2, Tier: HandfulTriple}},
		LastTrump: None,
		Scores:    []int{4, -1, -1, -1, -1},
	}
	b, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"called":0`, `"last_trump":null`, `"tier":"TRIPLE"`, `"contract":2`} {
		if !strings.Contains(s, want) {
			t.Fatalf("json %s missing %s", s, want)
		}
	}

	var back Hand
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Called.Is(0) || back.LastTrump.Present() || back.Handfuls[0].Tier != HandfulTriple {
		t.Fatalf("round trip lost data: %+v", back)
	}

	var missing Hand
	if err := json.Unmarshal([]byte(`{"taker":1}`), &missing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if missing.Called.Present() {
		t.Fatal("absent called must decode as None")
	}
	if err := json.Unmarshal([]byte(`{"handfuls":[{"player":0,"tier":"HUGE"}]}`), &missing); err == nil {
		t.Fatal("expected unknown tier error")
	}
}

func TestSlamOutcome(t *testing.T) {
	tests := []struct {
		slam Slam
		want SlamOutcome
	}{
		{Slam{Announced: true, Succeeded: true}, SlamAnnouncedSuccess},
		{Slam{Succeeded: true}, SlamUnannouncedSuccess},
		{Slam{Announced: true}, SlamAnnouncedFailure},
		{Slam{}, SlamNone},
	}
	for _, tt := range tests {
		if got := tt.slam.Outcome(); got != tt.want {
			t.Fatalf("%+v.Outcome() = %s, want %s", tt.slam, got, tt.want)
		}
	}
}

func TestParseContract(t *testing.T) {
	c, ok := ParseContract("Garde Sans")
	if !ok || c != ContractGardeSans {
		t.Fatalf("ParseContract(Garde Sans) = %v, %v", c, ok)
	}
	if _, ok := ParseContract("Garde sans"); ok {
		t.Fatal("contract names are case sensitive")
	}
}

func TestFormatPlayerName(t *testing.T) {
	tests := map[string]string{
		"jean   pierre": "Jean Pierre",
		"ANNE-marie":    "Anne-Marie",
		"alexis_g":      "Alexis_G",
		"  élodie ":     "Élodie",
		"   ":           "   ",
	}
	for in, want := range tests {
		if got := FormatPlayerName(in); got != want {
			t.Fatalf("FormatPlayerName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHandFacts(t *testing.T) {
	h := Hand{Taker: 1, Called: Some(3), Contract: ContractGarde, AttackPoints: 50, Bouts: 2, Miseres: []int{4}}
	f := h.Facts(5)
	if f.Players != 5 || f.Contract != "Garde" || !f.Called.Is(3) || f.Miseres[0] != 4 {
		t.Fatalf("unexpected facts: %+v", f)
	}
}
