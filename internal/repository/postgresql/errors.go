package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

// isUniqueViolation reports a unique constraint failure. An empty constraint
// matches any unique constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

// translate maps pgx.ErrNoRows to notFound and unique violations to conflict.
// A malformed uuid key cannot match a row, so it is not found as well.
// Either target may be nil to leave that case untouched.
func translate(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && (errors.Is(err, pgx.ErrNoRows) || isInvalidText(err)):
		return notFound
	case conflict != nil && isUniqueViolation(err, ""):
		return conflict
	}
	return err
}
