package dailyplan

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const (
	tableSlots      = "daily_slots"
	tableIntentions = "daily_intentions"
)

// Repo reads and appends to the two plan tables. Rows are never updated; the newest row
// of a day is the day's value.
type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) LatestSlot(ctx context.Context, userID string, start, end time.Time) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyplan.latestSlot")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.latest(ctx, tableSlots, `
		SELECT slot FROM daily_slots
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		userID, start, end,
	)
}

func (r *Repo) LatestIntention(ctx context.Context, userID string, start, end time.Time) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyplan.latestIntention")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return r.latest(ctx, tableIntentions, `
		SELECT intention FROM daily_intentions
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		userID, start, end,
	)
}

func (r *Repo) latest(ctx context.Context, table, query string, args ...any) (*string, error) {
	var v *string
	err := r.db.QueryRow(ctx, query, args...).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return v, nil
}

func (r *Repo) InsertSlot(ctx context.Context, userID string, slot Slot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyplan.insertSlot")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `INSERT INTO daily_slots (user_id, slot) VALUES ($1, $2)`, userID, string(slot))
	return store.Classify(tableSlots, "insert", err)
}

func (r *Repo) InsertIntention(ctx context.Context, userID string, intention Intention) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dailyplan.insertIntention")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `INSERT INTO daily_intentions (user_id, intention) VALUES ($1, $2)`, userID, string(intention))
	return store.Classify(tableIntentions, "insert", err)
}
