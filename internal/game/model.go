package game

import (
	"strings"
	"time"
	"unicode"
)

const (
	MinPlayers = 3
	MaxPlayers = 5

	// MaxAttackPoints is the card-point total of a full deck.
	MaxAttackPoints = 91
)

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Game struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Players   []Player  `json:"players"`
	Hands     []Hand    `json:"hands"`
}

// Hand is one scored round. Seat fields index into the owning game's Players.
type Hand struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Taker        int       `json:"taker"`
	Called       OptIndex  `json:"called"`
	Contract     Contract  `json:"contract"`
	AttackPoints int       `json:"attack_points"`
	Bouts        int       `json:"bouts"`
	LastTrump    OptIndex  `json:"last_trump"`
	Miseres      []int     `json:"miseres"`
	Handfuls     []Handful `json:"handfuls"`
	Slam         *Slam     `json:"slam,omitempty"`
	Scores       []int     `json:"scores"`
}

type Handful struct {
	Player int         `json:"player"`
	Tier   HandfulTier `json:"tier"`
}

type Slam struct {
	Announced bool `json:"announced"`
	Succeeded bool `json:"succeeded"`
}

// Outcome maps the announced/succeeded pair to its scoring bucket.
func (s Slam) Outcome() SlamOutcome {
	switch {
	case s.Announced && s.Succeeded:
		return SlamAnnouncedSuccess
	case !s.Announced && s.Succeeded:
		return SlamUnannouncedSuccess
	case s.Announced && !s.Succeeded:
		return SlamAnnouncedFailure
	default:
		return SlamNone
	}
}

type History struct {
	Games []Game `json:"games"`
}

// Facts extracts the scoring inputs of a recorded hand.
func (h Hand) Facts(players int) HandFacts {
	return HandFacts{
		Players:      players,
		Taker:        h.Taker,
		Called:       h.Called,
		Miseres:      h.Miseres,
		AttackPoints: h.AttackPoints,
		Bouts:        h.Bouts,
		LastTrump:    h.LastTrump,
		Contract:     h.Contract.Name(),
		Handfuls:     h.Handfuls,
		Slam:         h.Slam,
	}
}

func ValidPlayerCount(n int) bool {
	return n >= MinPlayers && n <= MaxPlayers
}

// FormatPlayerName collapses repeated spaces and capitalises every word.
// Words are separated by spaces, dashes or underscores.
func FormatPlayerName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	cleaned := strings.Join(strings.FieldsFunc(raw, func(r rune) bool { return r == ' ' }), " ")
	var b strings.Builder
	b.Grow(len(cleaned))
	capitalizeNext := true
	for _, r := range strings.ToLower(cleaned) {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
			capitalizeNext = true
		case capitalizeNext:
			b.WriteRune(unicode.ToTitle(r))
			capitalizeNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
