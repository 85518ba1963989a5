package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no row matches, including rows that
	// exist but belong to a different user. Callers cannot tell the two
	// apart, which is the point.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the users email unique index
	// rejects an insert.
	ErrDuplicateEmail = errors.New("email already exists")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
