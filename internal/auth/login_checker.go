package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/session"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserFor returns the user of a live session, or nil when the token is unknown or expired.
func (c *LoginChecker) UserFor(ctx context.Context, token string) (*session.User, error) {
	cmd := c.redisClient.HGetAll(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	user, createdAt, err := sessionFromHash(cmd.Val())
	if errors.Is(err, errNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Since(createdAt) > c.ttl {
		return nil, nil
	}
	return user, nil
}
