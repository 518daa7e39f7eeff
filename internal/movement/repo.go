package movement

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const (
	tableSessions = "sessions"
	tableGoals    = "goals"
)

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

const sessionColumns = `id, performed_at, duration_minutes, kind, template_key`

func collectSessions(rows pgx.Rows) ([]Session, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Session, error) {
		var s Session
		err := row.Scan(&s.ID, &s.PerformedAt, &s.DurationMinutes, &s.Kind, &s.TemplateKey)
		return s, err
	})
}

// SessionsBetween lists the sessions performed in [start, end), newest first.
func (r *Repo) SessionsBetween(ctx context.Context, userID string, start, end time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.sessionsBetween")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE user_id = $1 AND performed_at >= $2 AND performed_at < $3
		ORDER BY performed_at DESC, id DESC`,
		userID, start, end,
	)
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	sessions, err := collectSessions(rows)
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	return sessions, nil
}

// LastSession returns the most recent session of the user, or nil.
func (r *Repo) LastSession(ctx context.Context, userID string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.lastSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE user_id = $1
		ORDER BY performed_at DESC, id DESC
		LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	sessions, err := collectSessions(rows)
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (r *Repo) InsertSession(ctx context.Context, userID string, s NewSession) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.insertSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO sessions (user_id, performed_at, duration_minutes, kind, template_key)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, s.PerformedAt, s.DurationMinutes, s.Kind, s.TemplateKey,
	)
	return store.Classify(tableSessions, "insert", err)
}

func (r *Repo) DeleteSession(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.deleteSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return store.Classify(tableSessions, "delete", err)
	}
	if tag.RowsAffected() == 0 {
		return store.Classify(tableSessions, "delete", pgx.ErrNoRows)
	}
	return nil
}

func (r *Repo) PerformedAtBetween(ctx context.Context, userID string, start, end time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.performedAtBetween")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT performed_at FROM sessions
		WHERE user_id = $1 AND performed_at >= $2 AND performed_at < $3`,
		userID, start, end,
	)
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	ts, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, store.Classify(tableSessions, "select", err)
	}
	return ts, nil
}

// ActiveGoal returns the active goal with the highest id, or nil.
func (r *Repo) ActiveGoal(ctx context.Context, userID string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.activeGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var g Goal
	err = r.db.QueryRow(ctx, `
		SELECT id, per_week_sessions
		FROM goals
		WHERE user_id = $1 AND is_active
		ORDER BY id DESC
		LIMIT 1`,
		userID,
	).Scan(&g.ID, &g.PerWeekSessions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(tableGoals, "select", err)
	}
	return &g, nil
}

func (r *Repo) InsertGoal(ctx context.Context, userID string, perWeek int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.insertGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO goals (user_id, per_week_sessions, is_active)
		VALUES ($1, $2, true)
		RETURNING id`,
		userID, perWeek,
	).Scan(&id)
	if err != nil {
		return 0, store.Classify(tableGoals, "insert", err)
	}
	return id, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, userID string, id int64, perWeek int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.movement.updateGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `UPDATE goals SET per_week_sessions = $3 WHERE id = $2 AND user_id = $1`,
		userID, id, perWeek)
	if err != nil {
		return store.Classify(tableGoals, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return store.Classify(tableGoals, "update", pgx.ErrNoRows)
	}
	return nil
}
