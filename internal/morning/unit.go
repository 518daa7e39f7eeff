package morning

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type morningRepo interface {
	ForDay(ctx context.Context, userID, day string) (*MorningState, error)
	Between(ctx context.Context, userID string, from, to time.Time) ([]MorningState, error)
	Upsert(ctx context.Context, userID, day string, in row) error
	CreatedAtBetween(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error)
}

const recentDays = 7

const (
	msgLoadToday  = "Could not load this morning's state."
	msgLoadRecent = "Could not load your recent mornings."
	msgSave       = "Could not save your morning state."
)

type Unit struct {
	*syncunit.Base
	repo morningRepo

	todayGen  syncunit.Generation
	recentGen syncunit.Generation

	today  *MorningState
	recent []MorningState
}

func NewUnit(repo morningRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("morning", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Today               *MorningState     `json:"today"`
	Recent              []MorningState    `json:"recent"`
	WeeklyAverageMood   *float64          `json:"weekly_average_mood"`
	WeeklyAverageEnergy *float64          `json:"weekly_average_energy"`
	WeeklyTopPriorities []aggregate.Count `json:"weekly_top_priorities"`
	AverageBedTime      *string           `json:"average_bed_time"`
	AverageWakeTime     *string           `json:"average_wake_time"`
	AverageSleepMinutes *int              `json:"average_sleep_minutes"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		if u.today != nil {
			today := *u.today
			st.Today = &today
		}
		st.Recent = append([]MorningState{}, u.recent...)
	})

	moods := make([]*int, 0, len(st.Recent))
	energies := make([]*int, 0, len(st.Recent))
	priorities := make([][]string, 0, len(st.Recent))
	var beds, wakes []string
	pairs := make([]aggregate.ClockPair, 0, len(st.Recent))
	for _, s := range st.Recent {
		moods = append(moods, s.MoodLevel)
		energies = append(energies, s.EnergyLevel)
		priorities = append(priorities, s.Priorities)
		pair := aggregate.ClockPair{}
		if s.SleepBedTime != nil {
			pair.Bed = *s.SleepBedTime
			beds = append(beds, pair.Bed)
		}
		if s.SleepWakeTime != nil {
			pair.Wake = *s.SleepWakeTime
			wakes = append(wakes, pair.Wake)
		}
		pairs = append(pairs, pair)
	}

	st.WeeklyAverageMood = aggregate.AverageInts(moods)
	st.WeeklyAverageEnergy = aggregate.AverageInts(energies)
	st.WeeklyTopPriorities = aggregate.TopN(priorities, 3)
	st.AverageBedTime = aggregate.AverageClock(beds)
	st.AverageWakeTime = aggregate.AverageClock(wakes)
	st.AverageSleepMinutes = aggregate.AverageSleepDuration(pairs)
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() {
		u.today = nil
		u.recent = nil
	})
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.LoadToday(ctx)
	u.LoadRecent(ctx)
}

func (u *Unit) LoadToday(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.today = nil })
		return
	}

	tok := u.BeginLoad(&u.todayGen, user)
	defer u.EndLoad(tok)

	s, err := u.repo.ForDay(ctx, user.ID, daterange.LocalDay(u.Now()))
	if err != nil {
		if u.HandleLoadError("load today", err, msgLoadToday) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.today = nil })
		}
		return
	}
	u.Apply(tok, func() { u.today = s })
}

// LoadRecent loads the trailing seven days, oldest first.
func (u *Unit) LoadRecent(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.recent = nil })
		return
	}

	tok := u.BeginLoad(&u.recentGen, user)
	defer u.EndLoad(tok)

	from, to := daterange.RollingWindow(u.Now(), recentDays)
	states, err := u.repo.Between(ctx, user.ID, from, to)
	if err != nil {
		if u.HandleLoadError("load recent", err, msgLoadRecent) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.recent = nil })
		}
		return
	}
	u.Apply(tok, func() { u.recent = states })
}

// Save upserts today's morning state.
func (u *Unit) Save(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.morning.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	r, ok := toRow(in)
	if !ok {
		return u.Invalid("Sleep times must look like HH:MM.")
	}

	if err := u.repo.Upsert(ctx, user.ID, daterange.LocalDay(u.Now()), r); err != nil {
		u.HandleSaveError("save", err, msgSave)
		return err
	}

	u.MarkWritten()
	u.LoadToday(ctx)
	u.LoadRecent(ctx)
	return nil
}

// toRow maps energy from 0-4 to 1-5, stores empty priorities as NULL and rejects
// malformed clock values.
func toRow(in Input) (row, bool) {
	r := row{MoodLevel: in.Mood}
	if in.Energy != nil {
		energy := *in.Energy + 1
		r.EnergyLevel = &energy
	}

	for _, p := range in.Priorities {
		if p = strings.TrimSpace(p); p != "" {
			r.Priorities = append(r.Priorities, p)
		}
	}

	var ok bool
	if r.SleepBedTime, ok = normalizeClock(in.BedTime); !ok {
		return row{}, false
	}
	if r.SleepWakeTime, ok = normalizeClock(in.WakeTime); !ok {
		return row{}, false
	}
	return r, true
}

func normalizeClock(v *string) (*string, bool) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, true
	}
	minutes, ok := aggregate.ParseClock(*v)
	if !ok {
		return nil, false
	}
	formatted := aggregate.FormatClock(minutes)
	return &formatted, true
}

// MonthDays lists the UTC calendar days of a month that have a morning state.
func (u *Unit) MonthDays(ctx context.Context, year, monthIndex int) ([]string, error) {
	user := u.CurrentUser()
	if user == nil {
		return []string{}, nil
	}

	start, end := daterange.MonthRangeUTC(year, monthIndex)
	ts, err := u.repo.CreatedAtBetween(ctx, user.ID, start, end)
	if err != nil {
		return []string{}, u.HandleQueryError("month days", err)
	}
	return aggregate.DistinctDays(ts), nil
}
