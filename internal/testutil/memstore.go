package testutil

import (
	"context"
	"fmt"
	"sync"

	"tarot345/internal/game"
	"tarot345/internal/store"
)

// MemStore keeps players and games in memory with the same error contract as
// *store.Store, for tests that do not need Postgres.
type MemStore struct {
	mu      sync.Mutex
	seq     int
	players map[string]game.Player
	games   []game.Game
}

func NewMemStore() *MemStore {
	return &MemStore{players: map[string]game.Player{}}
}

func (r *MemStore) Ping(context.Context) error {
	return nil
}

func (r *MemStore) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s%d", prefix, r.seq)
}

func (r *MemStore) CreatePlayer(_ context.Context, name string) (game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := game.Player{ID: r.nextID("p"), Name: name}
	r.players[p.ID] = p
	return p, nil
}

func (r *MemStore) ListPlayers(context.Context) ([]game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []game.Player{}
	for _, p := range r.players {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemStore) GetPlayer(_ context.Context, id string) (game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return game.Player{}, store.ErrNotFound
	}
	return p, nil
}

func (r *MemStore) RenamePlayer(_ context.Context, id, name string) (game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return game.Player{}, store.ErrNotFound
	}
	r.players[id] = game.Player{ID: id, Name: name}
	return r.players[id], nil
}

func (r *MemStore) DeletePlayer(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return store.ErrNotFound
	}
	for _, g := range r.games {
		for _, p := range g.Players {
			if p.ID == id {
				return store.ErrConflict
			}
		}
	}
	delete(r.players, id)
	return nil
}

func (r *MemStore) CreateGame(_ context.Context, ids []string) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := game.Game{ID: r.nextID("g"), Hands: []game.Hand{}}
	for _, id := range ids {
		p, ok := r.players[id]
		if !ok {
			return game.Game{}, store.ErrNotFound
		}
		g.Players = append(g.Players, p)
	}
	r.games = append(r.games, g)
	return g, nil
}

func (r *MemStore) find(id string) int {
	for i, g := range r.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (r *MemStore) GetGame(_ context.Context, id string) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return game.Game{}, store.ErrNotFound
	}
	return r.games[i], nil
}

func (r *MemStore) ListGames(context.Context) ([]store.GameSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []store.GameSummary{}
	for _, g := range r.games {
		out = append(out, store.GameSummary{ID: g.ID, Players: g.Players, HandCount: len(g.Hands)})
	}
	return out, nil
}

func (r *MemStore) DeleteGame(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return store.ErrNotFound
	}
	r.games = append(r.games[:i], r.games[i+1:]...)
	return nil
}

func (r *MemStore) PlayerCount(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return 0, store.ErrNotFound
	}
	return len(r.games[i].Players), nil
}

func (r *MemStore) AddHand(_ context.Context, gameID string, h game.Hand) (game.Hand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(gameID)
	if i < 0 {
		return game.Hand{}, store.ErrNotFound
	}
	h.ID = r.nextID("h")
	r.games[i].Hands = append(r.games[i].Hands, h)
	return h, nil
}

func (r *MemStore) UpdateHand(_ context.Context, gameID string, h game.Hand) (game.Hand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(gameID)
	if i < 0 {
		return game.Hand{}, store.ErrNotFound
	}
	for j, old := range r.games[i].Hands {
		if old.ID == h.ID {
			r.games[i].Hands[j] = h
			return h, nil
		}
	}
	return game.Hand{}, store.ErrNotFound
}

func (r *MemStore) DeleteHand(_ context.Context, gameID, handID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(gameID)
	if i < 0 {
		return store.ErrNotFound
	}
	hands := r.games[i].Hands
	for j, h := range hands {
		if h.ID == handID {
			r.games[i].Hands = append(hands[:j], hands[j+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *MemStore) LoadHistory(context.Context) (game.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	games := make([]game.Game, len(r.games))
	copy(games, r.games)
	return game.History{Games: games}, nil
}

func (r *MemStore) ImportHistory(_ context.Context, h game.History) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range h.Games {
		if r.find(g.ID) >= 0 {
			return store.ErrConflict
		}
	}
	for _, g := range h.Games {
		for _, p := range g.Players {
			r.players[p.ID] = p
		}
		r.games = append(r.games, g)
	}
	return nil
}
