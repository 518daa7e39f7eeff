package morning

import (
	"context"
	"sync"
	"time"
)

type storedState struct {
	userID string
	MorningState
}

type fakeRepo struct {
	mu     sync.Mutex
	now    func() time.Time
	rows   []storedState
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

func (f *fakeRepo) ForDay(_ context.Context, userID, day string) (*MorningState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ForDay"); err != nil {
		return nil, err
	}
	for _, r := range f.rows {
		if r.userID == userID && r.DayDate == day {
			s := r.MorningState
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Between(_ context.Context, userID string, from, to time.Time) ([]MorningState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Between"); err != nil {
		return nil, err
	}
	out := []MorningState{}
	for _, r := range f.rows {
		if r.userID == userID && !r.CreatedAt.Before(from) && !r.CreatedAt.After(to) {
			out = append(out, r.MorningState)
		}
	}
	return out, nil
}

func (f *fakeRepo) Upsert(_ context.Context, userID, day string, in row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("Upsert"); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].userID == userID && f.rows[i].DayDate == day {
			f.rows[i].apply(in)
			return nil
		}
	}
	f.nextID++
	s := storedState{userID: userID, MorningState: MorningState{ID: f.nextID, DayDate: day, CreatedAt: f.now()}}
	s.apply(in)
	f.rows = append(f.rows, s)
	return nil
}

func (s *storedState) apply(in row) {
	s.MoodLevel = in.MoodLevel
	s.EnergyLevel = in.EnergyLevel
	s.Priorities = in.Priorities
	s.SleepBedTime = in.SleepBedTime
	s.SleepWakeTime = in.SleepWakeTime
}

func (f *fakeRepo) CreatedAtBetween(_ context.Context, userID string, start, end time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreatedAtBetween"); err != nil {
		return nil, err
	}
	var out []time.Time
	for _, r := range f.rows {
		if r.userID == userID && !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			out = append(out, r.CreatedAt)
		}
	}
	return out, nil
}

func (f *fakeRepo) seed(userID string, createdAt time.Time, s MorningState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = createdAt
	s.DayDate = createdAt.Format("2006-01-02")
	f.rows = append(f.rows, storedState{userID: userID, MorningState: s})
}
