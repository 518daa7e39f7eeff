package rituals

import (
	"context"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "rituals"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Ritual, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rituals.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, moment, focus, title, description, is_active
		FROM rituals
		WHERE user_id = $1
		ORDER BY moment ASC`,
		userID,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}

	rituals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Ritual, error) {
		var rt Ritual
		err := row.Scan(&rt.ID, &rt.Moment, &rt.Focus, &rt.Title, &rt.Description, &rt.IsActive)
		return rt, err
	})
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return rituals, nil
}

func (r *Repo) Insert(ctx context.Context, userID string, moment Moment, b body) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rituals.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO rituals (user_id, moment, focus, title, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, string(moment), b.Focus, b.Title, b.Description, b.IsActive,
	)
	return store.Classify(table, "insert", err)
}

// Update rewrites the ritual of (user, moment). It fails with a not found error when
// there is none.
func (r *Repo) Update(ctx context.Context, userID string, moment Moment, b body) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rituals.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE rituals
		SET focus = $3, title = $4, description = $5, is_active = $6, updated_at = now()
		WHERE user_id = $1 AND moment = $2`,
		userID, string(moment), b.Focus, b.Title, b.Description, b.IsActive,
	)
	if err != nil {
		return store.Classify(table, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return store.Classify(table, "update", pgx.ErrNoRows)
	}
	return nil
}
