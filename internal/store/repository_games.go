package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"tarot345/internal/game"
)

// CreateGame seats the given players in order. Unknown player ids yield
// ErrNotFound and a player seated twice yields ErrConflict.
func (s *Store) CreateGame(ctx context.Context, playerIDs []string) (game.Game, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return game.Game{}, err
	}
	defer tx.Rollback(ctx)

	g := game.Game{ID: NewID(), Hands: []game.Hand{}}
	if err := tx.QueryRow(ctx, `INSERT INTO games (id) VALUES ($1) RETURNING created_at`, g.ID).Scan(&g.CreatedAt); err != nil {
		return game.Game{}, err
	}
	if err := insertSeats(ctx, tx, g.ID, playerIDs); err != nil {
		return game.Game{}, err
	}
	if g.Players, err = gamePlayers(ctx, tx, g.ID); err != nil {
		return game.Game{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return game.Game{}, err
	}
	return g, nil
}

func insertSeats(ctx context.Context, tx pgx.Tx, gameID string, playerIDs []string) error {
	for seat, pid := range playerIDs {
		_, err := tx.Exec(ctx, `INSERT INTO game_players (game_id, seat, player_id) VALUES ($1, $2, $3)`, gameID, seat, pid)
		if err != nil {
			return mapConstraint(err, ErrNotFound)
		}
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func gamePlayers(ctx context.Context, q querier, gameID string) ([]game.Player, error) {
	rows, err := q.Query(ctx, `
SELECT p.id, p.name
FROM game_players gp
JOIN players p ON p.id = gp.player_id
WHERE gp.game_id = $1
ORDER BY gp.seat`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []game.Player{}
	for rows.Next() {
		var p game.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetGame(ctx context.Context, id string) (game.Game, error) {
	g := game.Game{ID: id}
	if err := s.Pool.QueryRow(ctx, `SELECT created_at FROM games WHERE id = $1`, id).Scan(&g.CreatedAt); err != nil {
		return game.Game{}, mapNotFound(err)
	}
	var err error
	if g.Players, err = gamePlayers(ctx, s.Pool, id); err != nil {
		return game.Game{}, err
	}
	if g.Hands, err = gameHands(ctx, s.Pool, id); err != nil {
		return game.Game{}, err
	}
	return g, nil
}

// PlayerCount returns the table size of a game.
func (s *Store) PlayerCount(ctx context.Context, gameID string) (int, error) {
	var exists bool
	var n int
	err := s.Pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM games WHERE id = $1),
       (SELECT count(*) FROM game_players WHERE game_id = $1)`, gameID).Scan(&exists, &n)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}
	return n, nil
}

func (s *Store) ListGames(ctx context.Context) ([]GameSummary, error) {
	rows, err := s.Pool.Query(ctx, `
SELECT g.id, g.created_at, (SELECT count(*) FROM hands h WHERE h.game_id = g.id)
FROM games g
ORDER BY g.created_at DESC, g.id DESC`)
	if err != nil {
		return nil, err
	}
	out := []GameSummary{}
	for rows.Next() {
		var gs GameSummary
		if err := rows.Scan(&gs.ID, &gs.CreatedAt, &gs.HandCount); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, gs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Players, err = gamePlayers(ctx, s.Pool, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertGame(ctx context.Context, tx pgx.Tx, g game.Game) error {
	createdAt := g.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := tx.Exec(ctx, `INSERT INTO games (id, created_at) VALUES ($1, $2)`, g.ID, createdAt)
	return mapConstraint(err, ErrNotFound)
}
