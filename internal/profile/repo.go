package profile

import (
	"context"
	"errors"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const (
	tableProfiles = "profiles"
	tableSettings = "notification_settings"

	defaultMaxPerDay = 3
)

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// Get returns nil when the user has no profile row.
func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var p Profile
	err = r.db.QueryRow(ctx, `SELECT username, display_name FROM profiles WHERE id = $1`, userID).
		Scan(&p.Username, &p.DisplayName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(tableProfiles, "select", err)
	}
	return &p, nil
}

// InsertProfile creates the profile row when missing. An existing row is left untouched.
func (r *Repo) InsertProfile(ctx context.Context, userID string, username, displayName *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.insertProfile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (id, username, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING`,
		userID, username, displayName,
	)
	return store.Classify(tableProfiles, "insert", err)
}

func (r *Repo) InsertSettings(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.insertSettings")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO notification_settings (user_id, max_per_day)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, defaultMaxPerDay,
	)
	return store.Classify(tableSettings, "insert", err)
}

// UpsertName sets both the username and the display name to name.
func (r *Repo) UpsertName(ctx context.Context, userID string, name *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsertName")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (id, username, display_name)
		VALUES ($1, $2, $2)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name,
			updated_at = now()`,
		userID, name,
	)
	return store.Classify(tableProfiles, "upsert", err)
}
