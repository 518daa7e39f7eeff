package reflections

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "daily_reflections"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ForDay(ctx context.Context, userID, day string) (_ *Reflection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reflections.forDay")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var ref Reflection
	var dayDate time.Time
	err = r.db.QueryRow(ctx, `
		SELECT id, day_date, updated_at, mindset_note, gratitude_note
		FROM daily_reflections
		WHERE user_id = $1 AND day_date = $2::date`,
		userID, day,
	).Scan(&ref.ID, &dayDate, &ref.UpdatedAt, &ref.MindsetNote, &ref.GratitudeNote)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	ref.DayDate = dayDate.Format("2006-01-02")
	return &ref, nil
}

// Upsert replaces both notes of (user, day). A nil note is stored as NULL.
func (r *Repo) Upsert(ctx context.Context, userID, day string, mindset, gratitude *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.reflections.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_reflections (user_id, day_date, mindset_note, gratitude_note)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (user_id, day_date) DO UPDATE SET
			mindset_note = EXCLUDED.mindset_note,
			gratitude_note = EXCLUDED.gratitude_note,
			updated_at = now()`,
		userID, day, mindset, gratitude,
	)
	return store.Classify(table, "upsert", err)
}
