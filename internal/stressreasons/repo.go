package stressreasons

import (
	"context"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "stress_reasons"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Newest(ctx context.Context, userID string, limit int) (_ []Reason, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stressreasons.newest")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, created_at, reason, category
		FROM stress_reasons
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}

	reasons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Reason, error) {
		var rs Reason
		err := row.Scan(&rs.ID, &rs.CreatedAt, &rs.Reason, &rs.Category)
		return rs, err
	})
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return reasons, nil
}

func (r *Repo) Insert(ctx context.Context, userID, reason string, category *string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stressreasons.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `INSERT INTO stress_reasons (user_id, reason, category) VALUES ($1, $2, $3)`,
		userID, reason, category)
	return store.Classify(table, "insert", err)
}

func (r *Repo) Delete(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stressreasons.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `DELETE FROM stress_reasons WHERE id = $1 AND user_id = $2`, id, userID)
	return store.Classify(table, "delete", err)
}
