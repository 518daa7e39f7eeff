package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: PgCodeUniqueViolation})
	undefined := &pgconn.PgError{Code: PgCodeUndefinedTable}

	assert.True(t, IsUniqueViolationError(unique))
	assert.False(t, IsUniqueViolationError(undefined))
	assert.True(t, IsUndefinedTableError(undefined))
	assert.False(t, IsUniqueViolationError(errors.New("plain")))
	assert.False(t, IsUndefinedTableError(nil))
}
