package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is the shared not-found sentinel repositories map pgx.ErrNoRows to
var ErrNotFound = errors.New("resource not found")

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// IsDuplicateConstraintError checks if the error is a unique violation on a
// specific named constraint. The booking repository uses this to tell the
// slot-conflict index apart from other uniques.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
