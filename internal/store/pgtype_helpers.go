package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"tarot345/internal/game"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// mapConstraint turns integrity violations into store errors. A foreign key
// violation on insert means the referenced row is missing, on delete it means
// the row is still referenced.
func mapConstraint(err error, onForeignKey error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation:
		return onForeignKey
	case pgUniqueViolation:
		return ErrConflict
	default:
		return err
	}
}

func optParam(v game.OptIndex) pgtype.Int4 {
	i, ok := v.Get()
	if !ok {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(i), Valid: true}
}

func optVal(v pgtype.Int4) game.OptIndex {
	if !v.Valid {
		return game.None
	}
	return game.Some(int(v.Int32))
}

func int32s(v []int) []int32 {
	out := make([]int32, len(v))
	for i, x := range v {
		out[i] = int32(x)
	}
	return out
}

func ints(v []int32) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}
