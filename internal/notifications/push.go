package notifications

import (
	"context"
	"crypto/ecdh"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var ErrPushUnsupported = errors.New("push notifications are not configured")

type subscriptionRepo interface {
	UpsertSubscription(ctx context.Context, userID string, sub Subscription) error
}

type PushRegistrar struct {
	repo      subscriptionRepo
	supported bool
}

func NewPushRegistrar(repo subscriptionRepo, vapidPublicKey string) *PushRegistrar {
	supported := ValidVAPIDKey(vapidPublicKey)
	if !supported {
		log.Warnln("push: no usable vapid public key configured, registrations will be refused")
	}
	return &PushRegistrar{
		repo:      repo,
		supported: supported,
	}
}

func (p *PushRegistrar) Supported() bool {
	return p.supported
}

// Register stores sub for user. Registering an endpoint again moves it to the latest user.
func (p *PushRegistrar) Register(ctx context.Context, user *session.User, sub Subscription) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifications.push.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if user == nil {
		return ErrNotAuthenticated
	}
	if !p.supported {
		return ErrPushUnsupported
	}
	if err := p.repo.UpsertSubscription(ctx, user.ID, sub); err != nil {
		log.Errorf("save push subscription for %s: %s", user.ID, err)
		return err
	}
	return nil
}

// ValidVAPIDKey reports whether key is a base64url encoded uncompressed P-256 point.
// Padding is optional.
func ValidVAPIDKey(key string) bool {
	key = strings.TrimRight(strings.TrimSpace(key), "=")
	if key == "" {
		return false
	}
	raw, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil || len(raw) != 65 || raw[0] != 0x04 {
		return false
	}
	_, err = ecdh.P256().NewPublicKey(raw)
	return err == nil
}
