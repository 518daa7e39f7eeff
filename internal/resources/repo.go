package resources

import (
	"context"
	"time"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "resource_events"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, userID string, occurredAt time.Time, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.resources.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var key *string
	if in.ResourceKey != "" {
		key = &in.ResourceKey
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO resource_events (user_id, occurred_at, source, resource_type, resource_key, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, occurredAt, in.Source, string(in.ResourceType), key, in.DurationSeconds,
	)
	return store.Classify(table, "insert", err)
}

func (r *Repo) Between(ctx context.Context, userID string, from, to time.Time) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.resources.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, occurred_at, source, resource_type, resource_key, duration_seconds
		FROM resource_events
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		ORDER BY occurred_at DESC`,
		userID, from, to,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}

	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Event, error) {
		var e Event
		err := row.Scan(&e.ID, &e.OccurredAt, &e.Source, &e.ResourceType, &e.ResourceKey, &e.DurationSeconds)
		return e, err
	})
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return events, nil
}
