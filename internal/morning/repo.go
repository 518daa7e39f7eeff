package morning

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "morning_states"

type Repo struct {
	db store.DB
}

func NewRepo(db store.DB) *Repo {
	return &Repo{
		db: db,
	}
}

const columns = `id, day_date, created_at, mood_level, energy_level, priorities, sleep_bed_time, sleep_wake_time`

func scanState(r pgx.Row) (*MorningState, error) {
	var s MorningState
	var day time.Time
	if err := r.Scan(
		&s.ID, &day, &s.CreatedAt, &s.MoodLevel, &s.EnergyLevel,
		&s.Priorities, &s.SleepBedTime, &s.SleepWakeTime,
	); err != nil {
		return nil, err
	}
	s.DayDate = day.Format("2006-01-02")
	return &s, nil
}

func (r *Repo) ForDay(ctx context.Context, userID, day string) (_ *MorningState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.morning.forDay")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s, err := scanState(r.db.QueryRow(ctx, `
		SELECT `+columns+`
		FROM morning_states
		WHERE user_id = $1 AND day_date = $2::date`,
		userID, day,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return s, nil
}

func (r *Repo) Between(ctx context.Context, userID string, from, to time.Time) (_ []MorningState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.morning.between")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT `+columns+`
		FROM morning_states
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	defer rows.Close()

	states := []MorningState{}
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, store.Classify(table, "scan", err)
		}
		states = append(states, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return states, nil
}

// Upsert writes the morning state of (user, day), replacing any earlier one.
func (r *Repo) Upsert(ctx context.Context, userID, day string, in row) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.morning.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `
		INSERT INTO morning_states
			(user_id, day_date, mood_level, energy_level, priorities, sleep_bed_time, sleep_wake_time)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, day_date) DO UPDATE SET
			mood_level = EXCLUDED.mood_level,
			energy_level = EXCLUDED.energy_level,
			priorities = EXCLUDED.priorities,
			sleep_bed_time = EXCLUDED.sleep_bed_time,
			sleep_wake_time = EXCLUDED.sleep_wake_time`,
		userID, day, in.MoodLevel, in.EnergyLevel, in.Priorities, in.SleepBedTime, in.SleepWakeTime,
	)
	return store.Classify(table, "upsert", err)
}

func (r *Repo) CreatedAtBetween(ctx context.Context, userID string, start, end time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.morning.createdAtBetween")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT created_at FROM morning_states
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`,
		userID, start, end,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	ts, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return ts, nil
}
