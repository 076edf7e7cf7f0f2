package store

import (
	"context"

	"tarot345/internal/game"
)

func (s *Store) CreatePlayer(ctx context.Context, name string) (game.Player, error) {
	p := game.Player{ID: NewID(), Name: name}
	_, err := s.Pool.Exec(ctx, `INSERT INTO players (id, name) VALUES ($1, $2)`, p.ID, p.Name)
	if err != nil {
		return game.Player{}, mapConstraint(err, ErrNotFound)
	}
	return p, nil
}

func (s *Store) ListPlayers(ctx context.Context) ([]game.Player, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, name FROM players ORDER BY name, id`)
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

func (s *Store) GetPlayer(ctx context.Context, id string) (game.Player, error) {
	var p game.Player
	err := s.Pool.QueryRow(ctx, `SELECT id, name FROM players WHERE id = $1`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		return game.Player{}, mapNotFound(err)
	}
	return p, nil
}

func (s *Store) RenamePlayer(ctx context.Context, id, name string) (game.Player, error) {
	tag, err := s.Pool.Exec(ctx, `UPDATE players SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return game.Player{}, err
	}
	if tag.RowsAffected() == 0 {
		return game.Player{}, ErrNotFound
	}
	return game.Player{ID: id, Name: name}, nil
}

// DeletePlayer fails with ErrConflict while the player is seated in a game.
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return mapConstraint(err, ErrConflict)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
