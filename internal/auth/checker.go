package auth

import (
	"context"

	"github.com/2beens/motivly/internal/session"
)

var (
	_ Checker = (*LoginChecker)(nil)
	_ Checker = (*LoginTestChecker)(nil)
	_ Checker = CheckerFunc(nil)
)

// Checker resolves a session token to its user.
// A nil user with a nil error means the token is unknown or expired.
type Checker interface {
	UserFor(ctx context.Context, token string) (*session.User, error)
}

// CheckerFunc lets a plain function act as a Checker.
type CheckerFunc func(ctx context.Context, token string) (*session.User, error)

func (f CheckerFunc) UserFor(ctx context.Context, token string) (*session.User, error) {
	return f(ctx, token)
}
