package repository

import (
	"errors"
	"fmt"

	"GameReviewAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// translate maps driver errors onto the shared taxonomy so services never
// see pgx internals. resource names the row kind for "<resource> not found"
// messages at the boundary.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %w", resource, model.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s %w", resource, model.ErrConflict)
	}
	return err
}

func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, model.ErrNotFound)
}
