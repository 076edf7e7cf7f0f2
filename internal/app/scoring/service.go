package scoring

import (
	"errors"
	"fmt"

	"tarot345/internal/game"
)

// Service scores hands that are not stored. It holds no state besides the
// rules, so one instance is shared by every request.
type Service struct {
	rules game.Rules
}

func NewService(rules game.Rules) *Service {
	return &Service{rules: rules}
}

func (s *Service) Score(req HandRequest) (*ScoreResponse, error) {
	facts, err := req.facts()
	if err != nil {
		return nil, err
	}
	scores, err := game.ComputeScores(facts, s.rules)
	if err != nil {
		return nil, mapGameError(err)
	}
	_, known := s.rules.Multiplier(facts.Contract)
	return &ScoreResponse{Scores: scores, ContractKnown: known}, nil
}

func (s *Service) Verify(req VerifyRequest) (*VerifyResponse, error) {
	facts, err := req.facts()
	if err != nil {
		return nil, err
	}
	if len(req.Scores) == 0 {
		return nil, fmt.Errorf("%w: scores are required", ErrInvalidRequest)
	}
	ok, err := game.VerifyScores(facts, req.Scores, s.rules)
	if err != nil {
		return nil, mapGameError(err)
	}
	return &VerifyResponse{Valid: ok}, nil
}

func (s *Service) Rules() *RulesResponse {
	out := &RulesResponse{Rules: s.rules, Handfuls: map[int][]HandfulRequirement{}}
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		reqs := []HandfulRequirement{}
		for _, tier := range game.HandfulTiers {
			if tier == game.HandfulNone {
				continue
			}
			trumps, ok := s.rules.HandfulTrumpsRequired(n, tier)
			if !ok {
				continue
			}
			reqs = append(reqs, HandfulRequirement{Tier: tier.Key(), Value: s.rules.HandfulValue(tier), Trumps: trumps})
		}
		out.Handfuls[n] = reqs
	}
	return out
}

func (r HandRequest) facts() (game.HandFacts, error) {
	if r.Contract == "" {
		return game.HandFacts{}, fmt.Errorf("%w: contract is required", ErrInvalidRequest)
	}
	handfuls := make([]game.Handful, 0, len(r.Handfuls))
	for _, h := range r.Handfuls {
		var tier game.HandfulTier
		if err := tier.UnmarshalText([]byte(h.Tier)); err != nil {
			return game.HandFacts{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		handfuls = append(handfuls, game.Handful{Player: h.Player, Tier: tier})
	}
	return game.HandFacts{
		Players:      r.Players,
		Taker:        r.Taker,
		Called:       game.OptFromPtr(r.Called),
		Miseres:      r.Miseres,
		AttackPoints: r.AttackPoints,
		Bouts:        r.Bouts,
		LastTrump:    game.OptFromPtr(r.LastTrump),
		Contract:     r.Contract,
		Handfuls:     handfuls,
		Slam:         r.Slam,
	}, nil
}

func mapGameError(err error) error {
	var invalid *game.InvalidHandError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrInvalidHand, invalid.Error())
	}
	return err
}
