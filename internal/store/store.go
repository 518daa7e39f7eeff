package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/2beens/motivly/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// TxDB is a DB that can also open transactions.
type TxDB interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Kind int

const (
	KindGeneric Kind = iota
	KindAbsentSchema
	KindUniqueViolation
	KindNetwork
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAbsentSchema:
		return "absent_schema"
	case KindUniqueViolation:
		return "unique_violation"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	default:
		return "generic"
	}
}

// Error is a backend failure classified once at the storage boundary.
type Error struct {
	Kind  Kind
	Table string
	Op    string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s [%s]: %s", e.Op, e.Table, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps err into an *Error. A nil err stays nil and an already classified error
// is returned unchanged.
func Classify(table, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{
		Kind:  kindOf(err),
		Table: table,
		Op:    op,
		Err:   err,
	}
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return KindNotFound
	case pkg.IsUndefinedTableError(err):
		return KindAbsentSchema
	case pkg.IsUniqueViolationError(err):
		return KindUniqueViolation
	case isNetworkError(err):
		return KindNetwork
	default:
		return KindGeneric
	}
}

func isNetworkError(err error) bool {
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded)
}

func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	if err == nil {
		return KindGeneric
	}
	return kindOf(err)
}

func IsAbsentSchema(err error) bool    { return err != nil && KindOf(err) == KindAbsentSchema }
func IsUniqueViolation(err error) bool { return err != nil && KindOf(err) == KindUniqueViolation }
func IsNetwork(err error) bool         { return err != nil && KindOf(err) == KindNetwork }
func IsNotFound(err error) bool        { return err != nil && KindOf(err) == KindNotFound }
