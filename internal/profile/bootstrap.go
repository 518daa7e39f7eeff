package profile

import (
	"context"
	"sync"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"

	log "github.com/sirupsen/logrus"
)

type bootstrapRepo interface {
	InsertProfile(ctx context.Context, userID string, username, displayName *string) error
	InsertSettings(ctx context.Context, userID string) error
}

// Bootstrapper creates the rows every user needs, once per user for its lifetime.
type Bootstrapper struct {
	repo bootstrapRepo

	mu      sync.Mutex
	ensured map[string]bool
}

func NewBootstrapper(repo bootstrapRepo) *Bootstrapper {
	return &Bootstrapper{
		repo:    repo,
		ensured: map[string]bool{},
	}
}

// EnsureUserData inserts the profile and notification settings rows when absent.
// A username taken by someone else leaves the profile without one.
func (b *Bootstrapper) EnsureUserData(ctx context.Context, user *session.User) error {
	if user == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ensured[user.ID] {
		return nil
	}

	username := Username(user.Email, user.ID)
	email := user.Email
	err := b.repo.InsertProfile(ctx, user.ID, &username, &email)
	if store.IsUniqueViolation(err) {
		log.Debugf("[profile] username %s taken, creating profile without one", username)
		err = b.repo.InsertProfile(ctx, user.ID, nil, &email)
	}
	if err != nil {
		return err
	}

	if err := b.repo.InsertSettings(ctx, user.ID); err != nil {
		return err
	}

	b.ensured[user.ID] = true
	return nil
}
