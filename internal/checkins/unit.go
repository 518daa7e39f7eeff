package checkins

import (
	"context"
	"time"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type checkinsRepo interface {
	LatestEvening(ctx context.Context, userID string, start, end time.Time) (*Checkin, error)
	Between(ctx context.Context, userID string, from, to time.Time) ([]Checkin, error)
	Insert(ctx context.Context, userID, day string, in Input) error
	FindID(ctx context.Context, userID, day string, moment Moment) (int64, error)
	Update(ctx context.Context, userID string, id int64, in Input) error
	StressSamples(ctx context.Context, userID string, start, end time.Time) ([]aggregate.Sample, error)
}

const (
	msgLoadToday  = "Could not load today's check-in."
	msgLoadRecent = "Could not load this week's check-ins."
	msgSave       = "Could not save your check-in."
)

type Unit struct {
	*syncunit.Base
	repo checkinsRepo

	todayGen  syncunit.Generation
	recentGen syncunit.Generation

	today  *Checkin
	recent []Checkin
}

func NewUnit(repo checkinsRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("checkins", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Today                      *Checkin                       `json:"today"`
	TodayMidday                *Checkin                       `json:"today_midday"`
	Recent                     []Checkin                      `json:"recent"`
	WeeklyAverageStress        *float64                       `json:"weekly_average_stress"`
	WeeklyAverageStressMidday  *float64                       `json:"weekly_average_stress_midday"`
	WeeklyAverageStressEvening *float64                       `json:"weekly_average_stress_evening"`
	WeeklyCount                int                            `json:"weekly_count"`
	WeeklyStressByDay          map[string]aggregate.DayBucket `json:"weekly_stress_by_day"`
}

func (u *Unit) State() State {
	var st State
	var recent []Checkin
	u.View(func(status syncunit.Status) {
		st.Status = status
		if u.today != nil {
			today := *u.today
			st.Today = &today
		}
		recent = append([]Checkin{}, u.recent...)
	})

	st.Recent = recent
	st.TodayMidday = TodayMidday(recent, daterange.LocalDay(u.Now()))
	st.WeeklyAverageStress = AverageStress(recent, "")
	st.WeeklyAverageStressMidday = AverageStress(recent, MomentMidday)
	st.WeeklyAverageStressEvening = AverageStress(recent, MomentEvening)
	st.WeeklyCount = len(recent)
	st.WeeklyStressByDay = StressByDay(recent)
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

// LoadToday loads the newest evening check-in of the local day.
func (u *Unit) LoadToday(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.today = nil })
		return
	}

	tok := u.BeginLoad(&u.todayGen, user)
	defer u.EndLoad(tok)

	start, end := daterange.DayBounds(u.Now())
	row, err := u.repo.LatestEvening(ctx, user.ID, start, end)
	if err != nil {
		if u.HandleLoadError("load today", err, msgLoadToday) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.today = nil })
		}
		return
	}
	u.Apply(tok, func() { u.today = row })
}

// LoadRecent loads the check-ins since Monday 00:00, oldest first.
func (u *Unit) LoadRecent(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.recent = nil })
		return
	}

	tok := u.BeginLoad(&u.recentGen, user)
	defer u.EndLoad(tok)

	now := u.Now()
	rows, err := u.repo.Between(ctx, user.ID, daterange.WeekStart(now), now)
	if err != nil {
		if u.HandleLoadError("load recent", err, msgLoadRecent) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.recent = nil })
		}
		return
	}
	u.Apply(tok, func() { u.recent = rows })
}

// Record saves the check-in of the local day for in.Moment (evening when empty). A second
// record for the same day and moment updates the existing row.
func (u *Unit) Record(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.checkins.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	if in.Moment == "" {
		in.Moment = MomentEvening
	}
	if !in.Moment.Valid() {
		return u.Invalid("Unknown check-in moment.")
	}

	day := daterange.LocalDay(u.Now())
	err = u.repo.Insert(ctx, user.ID, day, in)
	if store.IsUniqueViolation(err) {
		err = u.updateExisting(ctx, user.ID, day, in, err)
	}
	if err != nil {
		u.HandleSaveError("record", err, msgSave)
		return err
	}

	u.MarkWritten()
	u.LoadToday(ctx)
	u.LoadRecent(ctx)
	return nil
}

// updateExisting is the duplicate key fallback. When the existing row cannot be found the
// original insert error is returned.
func (u *Unit) updateExisting(ctx context.Context, userID, day string, in Input, insertErr error) error {
	id, err := u.repo.FindID(ctx, userID, day, in.Moment)
	if err != nil {
		log.Debugf("[checkins] locate existing %s check-in of %s: %s", in.Moment, day, err)
		return insertErr
	}
	return u.repo.Update(ctx, userID, id, in)
}

// MonthStressByDay buckets the stress levels of a UTC month by calendar day.
// monthIndex is zero based.
func (u *Unit) MonthStressByDay(ctx context.Context, year, monthIndex int) (map[string]aggregate.DayBucket, error) {
	user := u.CurrentUser()
	if user == nil {
		return map[string]aggregate.DayBucket{}, nil
	}

	start, end := daterange.MonthRangeUTC(year, monthIndex)
	samples, err := u.repo.StressSamples(ctx, user.ID, start, end)
	if err != nil {
		return map[string]aggregate.DayBucket{}, u.HandleQueryError("month stress", err)
	}
	return aggregate.BucketByDay(samples), nil
}

// AverageStress averages the stress levels of rows with moment, or of every row when
// moment is empty.
func AverageStress(rows []Checkin, moment Moment) *float64 {
	levels := make([]*int, 0, len(rows))
	for _, r := range rows {
		if moment != "" && r.Moment != moment {
			continue
		}
		levels = append(levels, r.StressLevel)
	}
	return aggregate.AverageInts(levels)
}

func StressByDay(rows []Checkin) map[string]aggregate.DayBucket {
	samples := make([]aggregate.Sample, 0, len(rows))
	for _, r := range rows {
		samples = append(samples, aggregate.Sample{At: r.CreatedAt, Value: r.StressLevel})
	}
	return aggregate.BucketByDay(samples)
}

// TodayMidday finds the midday check-in of today. Rows without a day fall back to the
// calendar date of their creation.
func TodayMidday(rows []Checkin, today string) *Checkin {
	for _, r := range rows {
		day := daterange.DayKey(r.CreatedAt)
		if r.Day != nil {
			day = *r.Day
		}
		if r.Moment == MomentMidday && day == today {
			found := r
			return &found
		}
	}
	return nil
}
