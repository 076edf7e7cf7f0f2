package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"tarot345/internal/game"
)

// LoadHistory reads every game with its seats and hands, oldest game first.
func (s *Store) LoadHistory(ctx context.Context) (game.History, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return game.History{}, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `SELECT id, created_at FROM games ORDER BY created_at, id`)
	if err != nil {
		return game.History{}, err
	}
	games := []game.Game{}
	index := map[string]int{}
	for rows.Next() {
		g := game.Game{Players: []game.Player{}, Hands: []game.Hand{}}
		if err := rows.Scan(&g.ID, &g.CreatedAt); err != nil {
			rows.Close()
			return game.History{}, err
		}
		index[g.ID] = len(games)
		games = append(games, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return game.History{}, err
	}

	rows, err = tx.Query(ctx, `
SELECT gp.game_id, p.id, p.name
FROM game_players gp
JOIN players p ON p.id = gp.player_id
ORDER BY gp.game_id, gp.seat`)
	if err != nil {
		return game.History{}, err
	}
	for rows.Next() {
		var gameID string
		var p game.Player
		if err := rows.Scan(&gameID, &p.ID, &p.Name); err != nil {
			rows.Close()
			return game.History{}, err
		}
		if i, ok := index[gameID]; ok {
			games[i].Players = append(games[i].Players, p)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return game.History{}, err
	}

	rows, err = tx.Query(ctx, `SELECT game_id, `+handColumns+` FROM hands ORDER BY game_id, position`)
	if err != nil {
		return game.History{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var gameID string
		h, err := scanHand(rows, &gameID)
		if err != nil {
			return game.History{}, err
		}
		if i, ok := index[gameID]; ok {
			games[i].Hands = append(games[i].Hands, h)
		}
	}
	if err := rows.Err(); err != nil {
		return game.History{}, err
	}
	return game.History{Games: games}, nil
}

// ImportHistory writes a whole history in one transaction. Players are
// upserted by id; a game id that already exists fails the import with
// ErrConflict.
func (s *Store) ImportHistory(ctx context.Context, h game.History) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, g := range h.Games {
		ids := make([]string, len(g.Players))
		for i, p := range g.Players {
			if p.ID == "" {
				return fmt.Errorf("import game %s: player %q has no id", g.ID, p.Name)
			}
			if _, err := tx.Exec(ctx, `
INSERT INTO players (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`, p.ID, p.Name); err != nil {
				return fmt.Errorf("import player %s: %w", p.ID, err)
			}
			ids[i] = p.ID
		}
		if g.ID == "" {
			g.ID = NewIDAt(g.CreatedAt)
		}
		if err := insertGame(ctx, tx, g); err != nil {
			return fmt.Errorf("import game %s: %w", g.ID, err)
		}
		if err := insertSeats(ctx, tx, g.ID, ids); err != nil {
			return fmt.Errorf("import game %s: %w", g.ID, err)
		}
		for _, hand := range g.Hands {
			if hand.ID == "" {
				hand.ID = NewIDAt(hand.CreatedAt)
			}
			if _, err := insertHand(ctx, tx, g.ID, hand); err != nil {
				return fmt.Errorf("import game %s hand %s: %w", g.ID, hand.ID, err)
			}
		}
	}
	return tx.Commit(ctx)
}
