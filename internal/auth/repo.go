package auth

import (
	"context"
	"errors"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
}

type UsersRepo struct {
	db store.DB
}

func NewUsersRepo(db store.DB) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Insert(ctx context.Context, u User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		u.ID, u.Email, u.PasswordHash)
	return store.Classify("users", "insert", err)
}

// ByEmail returns nil when no user has that email.
func (r *UsersRepo) ByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.byEmail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var u User
	err = r.db.QueryRow(ctx, `SELECT id, email, password_hash FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify("users", "select", err)
	}
	return &u, nil
}
