package store

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarot345/internal/game"
)

const handColumns = `id, created_at, taker, called, contract, attack_points, bouts, last_trump, miseres, handfuls, slam, scores`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHand(row rowScanner, extra ...any) (game.Hand, error) {
	var (
		h         game.Hand
		called    pgtype.Int4
		lastTrump pgtype.Int4
		contract  int32
		miseres   []int32
		scores    []int32
		handfuls  []byte
		slam      []byte
	)
	dest := append(extra, &h.ID, &h.CreatedAt, &h.Taker, &called, &contract, &h.AttackPoints, &h.Bouts,
		&lastTrump, &miseres, &handfuls, &slam, &scores)
	if err := row.Scan(dest...); err != nil {
		return game.Hand{}, err
	}
	h.Called = optVal(called)
	h.LastTrump = optVal(lastTrump)
	h.Contract = game.Contract(contract)
	h.Miseres = ints(miseres)
	h.Scores = ints(scores)
	if err := json.Unmarshal(handfuls, &h.Handfuls); err != nil {
		return game.Hand{}, fmt.Errorf("hand %s handfuls: %w", h.ID, err)
	}
	if h.Handfuls == nil {
		h.Handfuls = []game.Handful{}
	}
	if slam != nil {
		h.Slam = &game.Slam{}
		if err := json.Unmarshal(slam, h.Slam); err != nil {
			return game.Hand{}, fmt.Errorf("hand %s slam: %w", h.ID, err)
		}
	}
	return h, nil
}

type handParams struct {
	handfuls []byte
	slam     []byte
}

func encodeHand(h game.Hand) (handParams, error) {
	var p handParams
	handfuls := h.Handfuls
	if handfuls == nil {
		handfuls = []game.Handful{}
	}
	b, err := json.Marshal(handfuls)
	if err != nil {
		return p, err
	}
	p.handfuls = b
	if h.Slam != nil {
		if p.slam, err = json.Marshal(h.Slam); err != nil {
			return p, err
		}
	}
	return p, nil
}

func gameHands(ctx context.Context, q querier, gameID string) ([]game.Hand, error) {
	rows, err := q.Query(ctx, `SELECT `+handColumns+` FROM hands WHERE game_id = $1 ORDER BY position`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []game.Hand{}
	for rows.Next() {
		h, err := scanHand(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// AddHand appends a scored hand to a game. The caller is responsible for the
// scores; the store only persists them.
func (s *Store) AddHand(ctx context.Context, gameID string, h game.Hand) (game.Hand, error) {
	if h.ID == "" {
		h.ID = NewID()
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return game.Hand{}, err
	}
	defer tx.Rollback(ctx)
	out, err := insertHand(ctx, tx, gameID, h)
	if err != nil {
		return game.Hand{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return game.Hand{}, err
	}
	return out, nil
}

func insertHand(ctx context.Context, tx pgx.Tx, gameID string, h game.Hand) (game.Hand, error) {
	p, err := encodeHand(h)
	if err != nil {
		return game.Hand{}, err
	}
	// Serialise appends per game so positions stay unique.
	if _, err := tx.Exec(ctx, `SELECT 1 FROM games WHERE id = $1 FOR UPDATE`, gameID); err != nil {
		return game.Hand{}, err
	}
	row := tx.QueryRow(ctx, `
INSERT INTO hands (id, game_id, position, created_at, taker, called, contract, attack_points, bouts, last_trump, miseres, handfuls, slam, scores)
VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM hands WHERE game_id = $2), COALESCE($3, now()),
        $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING `+handColumns,
		h.ID, gameID, createdAtParam(h), h.Taker, optParam(h.Called), int32(h.Contract), h.AttackPoints, h.Bouts,
		optParam(h.LastTrump), int32s(h.Miseres), p.handfuls, p.slam, int32s(h.Scores))
	out, err := scanHand(row)
	if err != nil {
		return game.Hand{}, mapConstraint(err, ErrNotFound)
	}
	return out, nil
}

// UpdateHand replaces the facts and scores of a recorded hand, keeping its
// position in the game.
func (s *Store) UpdateHand(ctx context.Context, gameID string, h game.Hand) (game.Hand, error) {
	p, err := encodeHand(h)
	if err != nil {
		return game.Hand{}, err
	}
	row := s.Pool.QueryRow(ctx, `
UPDATE hands
SET taker = $3, called = $4, contract = $5, attack_points = $6, bouts = $7, last_trump = $8,
    miseres = $9, handfuls = $10, slam = $11, scores = $12
WHERE id = $1 AND game_id = $2
RETURNING `+handColumns,
		h.ID, gameID, h.Taker, optParam(h.Called), int32(h.Contract), h.AttackPoints, h.Bouts,
		optParam(h.LastTrump), int32s(h.Miseres), p.handfuls, p.slam, int32s(h.Scores))
	out, err := scanHand(row)
	if err != nil {
		return game.Hand{}, mapNotFound(err)
	}
	return out, nil
}

func (s *Store) DeleteHand(ctx context.Context, gameID, handID string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM hands WHERE id = $1 AND game_id = $2`, handID, gameID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func createdAtParam(h game.Hand) pgtype.Timestamptz {
	if h.CreatedAt.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: h.CreatedAt, Valid: true}
}
