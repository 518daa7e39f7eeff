package auth

import (
	"context"

	"github.com/2beens/motivly/internal/session"
)

type LoginTestChecker struct {
	LoggedSessions map[string]*session.User
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		map[string]*session.User{},
	}
}

func (c *LoginTestChecker) UserFor(_ context.Context, token string) (*session.User, error) {
	return c.LoggedSessions[token], nil
}
