package notifications

import (
	"context"
	"errors"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"
	"github.com/2beens/motivly/pkg"

	"github.com/jackc/pgx/v5"
)

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertPreferences(ctx context.Context, p Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.upsertPreferences")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO notification_preferences (
			user_id, morning_enabled, morning_time, midday_enabled, midday_time,
			evening_enabled, evening_time, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id) DO UPDATE SET
			morning_enabled = EXCLUDED.morning_enabled,
			morning_time = EXCLUDED.morning_time,
			midday_enabled = EXCLUDED.midday_enabled,
			midday_time = EXCLUDED.midday_time,
			evening_enabled = EXCLUDED.evening_enabled,
			evening_time = EXCLUDED.evening_time,
			updated_at = now()`,
		p.UserID, p.MorningEnabled, p.MorningTime, p.MiddayEnabled, p.MiddayTime,
		p.EveningEnabled, p.EveningTime,
	)
	return store.Classify("notification_preferences", "upsert", err)
}

// Preferences returns the stored row, or nil when the user never saved any.
func (r *Repo) Preferences(ctx context.Context, userID string) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.preferences")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var p Preferences
	err = r.db.QueryRow(ctx, `
		SELECT user_id, morning_enabled, morning_time, midday_enabled, midday_time,
			evening_enabled, evening_time, updated_at
		FROM notification_preferences
		WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.MorningEnabled, &p.MorningTime, &p.MiddayEnabled, &p.MiddayTime,
		&p.EveningEnabled, &p.EveningTime, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify("notification_preferences", "select", err)
	}
	return &p, nil
}

// UpsertSubscription stores the subscription keyed by endpoint. The last writer owns it.
func (r *Repo) UpsertSubscription(ctx context.Context, userID string, sub Subscription) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.upsertSubscription")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (endpoint) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			p256dh = EXCLUDED.p256dh,
			auth = EXCLUDED.auth,
			updated_at = now()`,
		userID, sub.Endpoint, pkg.StringOrNil(sub.Keys.P256dh), pkg.StringOrNil(sub.Keys.Auth),
	)
	return store.Classify("push_subscriptions", "upsert", err)
}
