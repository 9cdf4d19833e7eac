package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgForeignKeyViolationCode is the PostgreSQL error code for foreign
// key constraint violations.
const pgForeignKeyViolationCode = "23503"

// isForeignKeyViolation checks if the given error is a PostgreSQL
// foreign key constraint violation, e.g. an offer referencing a user
// that does not exist.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}
