package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"tarot345/internal/game"
	"tarot345/internal/stats"
	"tarot345/internal/store"
)

// Repository is the persistence the score sheet needs. *store.Store
// implements it.
type Repository interface {
	CreatePlayer(ctx context.Context, name string) (game.Player, error)
	ListPlayers(ctx context.Context) ([]game.Player, error)
	GetPlayer(ctx context.Context, id string) (game.Player, error)
	RenamePlayer(ctx context.Context, id, name string) (game.Player, error)
	DeletePlayer(ctx context.Context, id string) error

	CreateGame(ctx context.Context, playerIDs []string) (game.Game, error)
	GetGame(ctx context.Context, id string) (game.Game, error)
	ListGames(ctx context.Context) ([]store.GameSummary, error)
	DeleteGame(ctx context.Context, id string) error
	PlayerCount(ctx context.Context, gameID string) (int, error)

	AddHand(ctx context.Context, gameID string, h game.Hand) (game.Hand, error)
	UpdateHand(ctx context.Context, gameID string, h game.Hand) (game.Hand, error)
	DeleteHand(ctx context.Context, gameID, handID string) error

	LoadHistory(ctx context.Context) (game.History, error)
	ImportHistory(ctx context.Context, h game.History) error
}

type Service struct {
	repo  Repository
	rules game.Rules
}

func NewService(repo Repository, rules game.Rules) *Service {
	return &Service{repo: repo, rules: rules}
}

func (s *Service) ListPlayers(ctx context.Context) (*PlayersResponse, error) {
	items, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return &PlayersResponse{Items: items}, nil
}

func (s *Service) CreatePlayer(ctx context.Context, name string) (game.Player, error) {
	name, err := playerName(name)
	if err != nil {
		return game.Player{}, err
	}
	return s.repo.CreatePlayer(ctx, name)
}

func (s *Service) RenamePlayer(ctx context.Context, id, name string) (game.Player, error) {
	name, err := playerName(name)
	if err != nil {
		return game.Player{}, err
	}
	p, err := s.repo.RenamePlayer(ctx, id, name)
	if errors.Is(err, store.ErrNotFound) {
		return game.Player{}, ErrPlayerNotFound
	}
	return p, err
}

func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	err := s.repo.DeletePlayer(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, store.ErrConflict):
		return ErrPlayerInUse
	}
	return err
}

func playerName(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	return game.FormatPlayerName(strings.TrimSpace(raw)), nil
}

func (s *Service) ListGames(ctx context.Context) (*GamesResponse, error) {
	items, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return &GamesResponse{Items: items}, nil
}

// CreateGame seats 3 to 5 distinct players in the given order.
func (s *Service) CreateGame(ctx context.Context, playerIDs []string) (*GameResponse, error) {
	if !game.ValidPlayerCount(len(playerIDs)) {
		return nil, fmt.Errorf("%w: a game needs %d to %d players", ErrInvalidRequest, game.MinPlayers, game.MaxPlayers)
	}
	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if id == "" || seen[id] {
			return nil, fmt.Errorf("%w: player ids must be distinct", ErrInvalidRequest)
		}
		seen[id] = true
	}
	g, err := s.repo.CreateGame(ctx, playerIDs)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrPlayerNotFound
	case errors.Is(err, store.ErrConflict):
		return nil, fmt.Errorf("%w: player ids must be distinct", ErrInvalidRequest)
	case err != nil:
		return nil, err
	}
	log.Info().Str("game_id", g.ID).Int("players", len(g.Players)).Msg("game created")
	return gameResponse(g), nil
}

func (s *Service) GetGame(ctx context.Context, id string) (*GameResponse, error) {
	g, err := s.repo.GetGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return gameResponse(g), nil
}

func gameResponse(g game.Game) *GameResponse {
	totals := make([]int, len(g.Players))
	for _, h := range g.Hands {
		for i := 0; i < len(totals) && i < len(h.Scores); i++ {
			totals[i] += h.Scores[i]
		}
	}
	return &GameResponse{Game: g, Totals: totals}
}

func (s *Service) DeleteGame(ctx context.Context, id string) error {
	err := s.repo.DeleteGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrGameNotFound
	}
	return err
}

// RecordHand scores a hand and appends it to a game.
func (s *Service) RecordHand(ctx context.Context, gameID string, in HandInput) (game.Hand, error) {
	h, err := s.scoredHand(ctx, gameID, in)
	if err != nil {
		return game.Hand{}, err
	}
	out, err := s.repo.AddHand(ctx, gameID, h)
	if errors.Is(err, store.ErrNotFound) {
		return game.Hand{}, ErrGameNotFound
	}
	if err != nil {
		return game.Hand{}, err
	}
	log.Info().Str("game_id", gameID).Str("hand_id", out.ID).Ints("scores", out.Scores).Msg("hand recorded")
	return out, nil
}

// UpdateHand rescores a recorded hand from corrected facts.
func (s *Service) UpdateHand(ctx context.Context, gameID, handID string, in HandInput) (game.Hand, error) {
	h, err := s.scoredHand(ctx, gameID, in)
	if err != nil {
		return game.Hand{}, err
	}
	h.ID = handID
	out, err := s.repo.UpdateHand(ctx, gameID, h)
	if errors.Is(err, store.ErrNotFound) {
		return game.Hand{}, ErrHandNotFound
	}
	return out, err
}

func (s *Service) DeleteHand(ctx context.Context, gameID, handID string) error {
	err := s.repo.DeleteHand(ctx, gameID, handID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrHandNotFound
	}
	return err
}

func (s *Service) scoredHand(ctx context.Context, gameID string, in HandInput) (game.Hand, error) {
	n, err := s.repo.PlayerCount(ctx, gameID)
	if errors.Is(err, store.ErrNotFound) {
		return game.Hand{}, ErrGameNotFound
	}
	if err != nil {
		return game.Hand{}, err
	}
	if !in.Contract.Valid() {
		return game.Hand{}, fmt.Errorf("%w: contract %d out of range", ErrInvalidHand, int(in.Contract))
	}
	h := game.Hand{
		Taker:        in.Taker,
		Called:       in.Called,
		Contract:     in.Contract,
		AttackPoints: in.AttackPoints,
		Bouts:        in.Bouts,
		LastTrump:    in.LastTrump,
		Miseres:      in.Miseres,
		Handfuls:     in.Handfuls,
		Slam:         in.Slam,
	}
	if h.Miseres == nil {
		h.Miseres = []int{}
	}
	if h.Handfuls == nil {
		h.Handfuls = []game.Handful{}
	}
	facts := h.Facts(n)
	scores, err := game.ComputeScores(facts, s.rules)
	if err != nil {
		return game.Hand{}, mapGameError(err)
	}
	if in.Scores != nil {
		scores = in.Scores
	}
	ok, err := game.VerifyScores(facts, scores, s.rules)
	if err != nil {
		return game.Hand{}, mapGameError(err)
	}
	if !ok {
		if in.Scores == nil {
			log.Error().Str("game_id", gameID).Ints("scores", scores).Msg("computed scores failed verification")
		}
		return game.Hand{}, ErrScoresMismatch
	}
	h.Scores = scores
	return h, nil
}

func mapGameError(err error) error {
	var invalid *game.InvalidHandError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrInvalidHand, invalid.Error())
	}
	return err
}

func (s *Service) Statistics(ctx context.Context) (*stats.Report, error) {
	h, err := s.repo.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	report, err := stats.Analyze(h)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *Service) PlayerStatistics(ctx context.Context, playerID string) (*PlayerStatisticsResponse, error) {
	p, err := s.repo.GetPlayer(ctx, playerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	report, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	ps, ok := report.Players[playerID]
	if !ok {
		ps = stats.PlayerStats{ByPlayerCount: map[int]stats.PlayerCountStats{}}
		for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
			ps.ByPlayerCount[n] = stats.PlayerCountStats{}
		}
	}
	total := ps.Total()
	return &PlayerStatisticsResponse{
		Player:         p,
		ByPlayerCount:  ps.ByPlayerCount,
		Total:          total,
		Net:            total.Net(),
		AveragePerHand: total.AveragePerHand(),
		AveragePerGame: total.AveragePerGame(),
	}, nil
}

func (s *Service) GameStatistics(ctx context.Context, gameID string) (*stats.GameStats, error) {
	report, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	gs, ok := report.Game(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	return &gs, nil
}

func (s *Service) ExportHistory(ctx context.Context) (game.History, error) {
	return s.repo.LoadHistory(ctx)
}

// ImportHistory stores a whole history after checking every hand's scores
// against its facts. Nothing is written when one hand is rejected.
func (s *Service) ImportHistory(ctx context.Context, h game.History) (*ImportResponse, error) {
	if _, err := stats.Analyze(h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	resp := &ImportResponse{Games: len(h.Games)}
	for _, g := range h.Games {
		for _, hand := range g.Hands {
			ok, err := game.VerifyScores(hand.Facts(len(g.Players)), hand.Scores, s.rules)
			if err != nil {
				return nil, fmt.Errorf("game %s hand %s: %w", g.ID, hand.ID, mapGameError(err))
			}
			if !ok {
				return nil, fmt.Errorf("game %s hand %s: %w", g.ID, hand.ID, ErrScoresMismatch)
			}
			resp.Hands++
		}
	}
	if err := s.repo.ImportHistory(ctx, h); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	log.Info().Int("games", resp.Games).Int("hands", resp.Hands).Msg("history imported")
	return resp, nil
}
