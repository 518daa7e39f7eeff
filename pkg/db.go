package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgCodeUniqueViolation = "23505"
	PgCodeUndefinedTable  = "42P01"
)

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == PgCodeUniqueViolation
}

// IsUndefinedTableError checks if the error says the queried relation does not exist
func IsUndefinedTableError(err error) bool {
	return pgErrorCode(err) == PgCodeUndefinedTable
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
