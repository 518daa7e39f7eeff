package weeklyslots

import (
	"context"

	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

const table = "user_weekly_slots"

type Repo struct {
	db store.TxDB
}

func NewRepo(db store.TxDB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Slot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeklyslots.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT day_index, time_of_day
		FROM user_weekly_slots
		WHERE user_id = $1
		ORDER BY day_index ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}

	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Slot, error) {
		var s Slot
		var day int16
		err := row.Scan(&day, &s.TimeOfDay)
		s.DayIndex = int(day)
		return s, err
	})
	if err != nil {
		return nil, store.Classify(table, "select", err)
	}
	return slots, nil
}

// Replace swaps the user's whole schedule for slots in one transaction.
func (r *Repo) Replace(ctx context.Context, userID string, slots []Slot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weeklyslots.replace")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_weekly_slots WHERE user_id = $1`, userID); err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{table},
			[]string{"user_id", "day_index", "time_of_day"},
			pgx.CopyFromSlice(len(slots), func(i int) ([]any, error) {
				return []any{userID, int16(slots[i].DayIndex), string(slots[i].TimeOfDay)}, nil
			}),
		)
		return err
	})
	return store.Classify(table, "replace", err)
}
