package game

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

//go:embed constantes.json
var defaultRulesJSON []byte

const defaultMiserePenalty = 10

type SlamValues struct {
	AnnouncedSuccess   int `json:"annonce_reussi"`
	UnannouncedSuccess int `json:"non_annonce_reussi"`
	AnnouncedFailure   int `json:"annonce_rate"`
}

// Rules holds the scoring constants. Values are shared read-only; nothing in
// this package mutates a Rules after it has been parsed.
type Rules struct {
	BoutThresholds []int                     `json:"seuils_bouts"`
	Multipliers    map[string]int            `json:"multiplicateurs"`
	LastTrumpBonus int                       `json:"petit_au_bout"`
	Slam           SlamValues                `json:"chelem"`
	MiserePenalty  int                       `json:"misere_penalite"`
	BaseConst      int                       `json:"base_const"`
	HandfulValues  map[string]int            `json:"poignee_values"`
	HandfulTrumps  map[string]map[string]int `json:"poignee_atouts"`
}

func DefaultRules() Rules {
	r, err := ParseRules(defaultRulesJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded rules: %v", err))
	}
	return r
}

func LoadRules(path string) (Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	return ParseRules(b)
}

func ParseRules(b []byte) (Rules, error) {
	r := Rules{MiserePenalty: defaultMiserePenalty}
	if err := json.Unmarshal(b, &r); err != nil {
		return Rules{}, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (r Rules) Validate() error {
	if len(r.BoutThresholds) == 0 {
		return fmt.Errorf("%w: seuils_bouts is empty", ErrInvalidRules)
	}
	return nil
}

// Threshold returns the points the attack needs for the given bout count.
// Out-of-range counts are clamped onto the table.
func (r Rules) Threshold(bouts int) int {
	last := len(r.BoutThresholds) - 1
	if bouts < 0 {
		bouts = 0
	}
	if bouts > last {
		bouts = last
	}
	return r.BoutThresholds[bouts]
}

// Multiplier looks a contract up by name. Unknown names yield 1 and false.
func (r Rules) Multiplier(contract string) (int, bool) {
	m, ok := r.Multipliers[contract]
	if !ok {
		return 1, false
	}
	return m, true
}

// HandfulValue is 0 for tiers missing from the table.
func (r Rules) HandfulValue(t HandfulTier) int {
	return r.HandfulValues[t.Key()]
}

func (r Rules) SlamBonus(o SlamOutcome) int {
	switch o {
	case SlamAnnouncedSuccess:
		return r.Slam.AnnouncedSuccess
	case SlamUnannouncedSuccess:
		return r.Slam.UnannouncedSuccess
	case SlamAnnouncedFailure:
		return r.Slam.AnnouncedFailure
	case SlamNone:
		return 0
	default:
		return 0
	}
}

// HandfulTrumpsRequired is the number of trumps a player must show to declare
// the tier at a table of the given size.
func (r Rules) HandfulTrumpsRequired(players int, t HandfulTier) (int, bool) {
	byTier, ok := r.HandfulTrumps[strconv.Itoa(players)]
	if !ok {
		return 0, false
	}
	n, ok := byTier[t.Key()]
	return n, ok
}
