package checkins

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type storedCheckin struct {
	userID string
	Checkin
}

// fakeRepo keeps check-ins in memory and enforces the (user, day, moment) unique key.
type fakeRepo struct {
	mu     sync.Mutex
	now    func() time.Time
	rows   []storedCheckin
	nextID int64
	errs   map[string]error
	calls  []string
}

func newFakeRepo(now func() time.Time) *fakeRepo {
	return &fakeRepo{
		now:  now,
		errs: map[string]error{},
	}
}

func (f *fakeRepo) fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[method] = err
}

func (f *fakeRepo) record(method string) error {
	f.calls = append(f.calls, method)
	return f.errs[method]
}

func (f *fakeRepo) LatestEvening(_ context.Context, userID string, start, end time.Time) (*Checkin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("LatestEvening"); err != nil {
		return nil, err
	}
	var latest *Checkin
	for _, r := range f.rows {
		if r.userID != userID || r.Moment != MomentEvening || r.CreatedAt.Before(start) || !r.CreatedAt.Before(end) {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			c := r.Checkin
			latest = &c
		}
	}
	return latest, nil
}

func (f *fakeRepo) Between(_ context.Context, userID string, from, to time.Time) ([]Checkin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Between"); err != nil {
		return nil, err
	}
	out := []Checkin{}
	for _, r := range f.rows {
		if r.userID == userID && !r.CreatedAt.Before(from) && !r.CreatedAt.After(to) {
			out = append(out, r.Checkin)
		}
	}
	return out, nil
}

func (f *fakeRepo) Insert(_ context.Context, userID, day string, in Input) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Insert"); err != nil {
		return err
	}
	for _, r := range f.rows {
		if r.userID == userID && r.Day != nil && *r.Day == day && r.Moment == in.Moment {
			return store.Classify(table, "insert", &pgconn.PgError{Code: "23505"})
		}
	}
	f.nextID++
	d := day
	level := in.StressLevel
	f.rows = append(f.rows, storedCheckin{
		userID: userID,
		Checkin: Checkin{
			ID:          f.nextID,
			CreatedAt:   f.now(),
			Day:         &d,
			StressLevel: &level,
			Note:        in.Note,
			Question:    in.Question,
			Moment:      in.Moment,
		},
	})
	return nil
}

func (f *fakeRepo) FindID(_ context.Context, userID, day string, moment Moment) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("FindID"); err != nil {
		return 0, err
	}
	for _, r := range f.rows {
		if r.userID == userID && r.Day != nil && *r.Day == day && r.Moment == moment {
			return r.ID, nil
		}
	}
	return 0, store.Classify(table, "select", pgx.ErrNoRows)
}

func (f *fakeRepo) Update(_ context.Context, userID string, id int64, in Input) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Update"); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].ID == id && f.rows[i].userID == userID {
			level := in.StressLevel
			f.rows[i].StressLevel = &level
			f.rows[i].Note = in.Note
			f.rows[i].Question = in.Question
			return nil
		}
	}
	return store.Classify(table, "update", pgx.ErrNoRows)
}

func (f *fakeRepo) StressSamples(_ context.Context, userID string, start, end time.Time) ([]aggregate.Sample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("StressSamples"); err != nil {
		return nil, err
	}
	var out []aggregate.Sample
	for _, r := range f.rows {
		if r.userID == userID && !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			out = append(out, aggregate.Sample{At: r.CreatedAt, Value: r.StressLevel})
		}
	}
	return out, nil
}

// seed stores a row as if it had been written at createdAt.
func (f *fakeRepo) seed(userID string, createdAt time.Time, moment Moment, level int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	d := daterange.LocalDay(createdAt)
	f.rows = append(f.rows, storedCheckin{
		userID: userID,
		Checkin: Checkin{
			ID:          f.nextID,
			CreatedAt:   createdAt,
			Day:         &d,
			StressLevel: &level,
			Moment:      moment,
		},
	})
}
