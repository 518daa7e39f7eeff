package checkins

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const table = "wellbeing_checkins"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

const checkinColumns = `id, created_at, day, stress_level, note, question, moment`

func scanCheckin(row pgx.Row) (*Checkin, error) {
	var c Checkin
	var day *time.Time
	var moment string
	if err := row.Scan(&c.ID, &c.CreatedAt, &day, &c.StressLevel, &c.Note, &c.Question, &moment); err != nil {
		return nil, err
	}
	if day != nil {
		d := day.Format("2006-01-02")
		c.Day = &d
	}
	c.Moment = Moment(moment)
	return &c, nil
}

// LatestEvening returns the newest evening check-in created in [start, end), or nil.
func (r *Repo) LatestEvening(ctx context.Context, userID string, start, end time.Time) (_ *Checkin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.latestEvening")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	c, err := scanCheckin(r.db.QueryRow(ctx, `
		SELECT `+checkinColumns+`
		FROM wellbeing_checkins
		WHERE user_id = $1 AND moment = 'evening' AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
		LIMIT 1`,
		userID, start, end,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return c, nil
}

// Between lists check-ins created in [from, to], oldest first.
func (r *Repo) Between(ctx context.Context, userID string, from, to time.Time) (_ []Checkin, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+checkinColumns+`
		FROM wellbeing_checkins
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	defer rows.Close()

	checkins := []Checkin{}
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, store.Classify(table, "scan", err)
		}
		checkins = append(checkins, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(table, "select", err)
	}

	span.SetAttributes(attribute.Int("checkins.count", len(checkins)))
	return checkins, nil
}

func (r *Repo) Insert(ctx context.Context, userID, day string, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.insert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO wellbeing_checkins (user_id, day, stress_level, note, question, moment)
		VALUES ($1, $2::date, $3, $4, $5, $6)`,
		userID, day, in.StressLevel, in.Note, in.Question, string(in.Moment),
	)
	return store.Classify(table, "insert", err)
}

// FindID locates the check-in of the natural key (user, day, moment).
func (r *Repo) FindID(ctx context.Context, userID, day string, moment Moment) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.findID")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var id int64
	err = r.db.QueryRow(ctx, `
		SELECT id FROM wellbeing_checkins
		WHERE user_id = $1 AND day = $2::date AND moment = $3
		LIMIT 1`,
		userID, day, string(moment),
	).Scan(&id)
	if err != nil {
		return 0, store.Classify(table, "select", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, userID string, id int64, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `
		UPDATE wellbeing_checkins
		SET stress_level = $1, note = $2, question = $3
		WHERE id = $4 AND user_id = $5`,
		in.StressLevel, in.Note, in.Question, id, userID,
	)
	if err != nil {
		return store.Classify(table, "update", err)
	}
	if tag.RowsAffected() == 0 {
		return store.Classify(table, "update", pgx.ErrNoRows)
	}
	return nil
}

// StressSamples returns (created_at, stress_level) for check-ins created in [start, end).
func (r *Repo) StressSamples(ctx context.Context, userID string, start, end time.Time) (_ []aggregate.Sample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.stressSamples")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT created_at, stress_level
		FROM wellbeing_checkins
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`,
		userID, start, end,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	defer rows.Close()

	var samples []aggregate.Sample
	for rows.Next() {
		var s aggregate.Sample
		if err := rows.Scan(&s.At, &s.Value); err != nil {
			return nil, store.Classify(table, "scan", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return samples, nil
}
