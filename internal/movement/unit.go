package movement

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/catalog"
	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=movement_test

type movementRepo interface {
	SessionsBetween(ctx context.Context, userID string, start, end time.Time) ([]Session, error)
	LastSession(ctx context.Context, userID string) (*Session, error)
	InsertSession(ctx context.Context, userID string, s NewSession) error
	DeleteSession(ctx context.Context, userID string, id int64) error
	PerformedAtBetween(ctx context.Context, userID string, start, end time.Time) ([]time.Time, error)
	ActiveGoal(ctx context.Context, userID string) (*Goal, error)
	InsertGoal(ctx context.Context, userID string, perWeek int) (int64, error)
	UpdateGoal(ctx context.Context, userID string, id int64, perWeek int) error
}

// userEnsurer creates the profile and settings rows of a user.
type userEnsurer interface {
	EnsureUserData(ctx context.Context, user *session.User) error
}

const (
	MinGoal     = 1
	MaxGoal     = 14
	latestCount = 3
	unknownKind = "unknown"
)

const (
	msgLoadWeek = "Could not load this week's sessions."
	msgLoadGoal = "Could not load your weekly goal."
	msgRecord   = "Could not record the session."
	msgGoal     = "Could not update your weekly goal."
	msgDelete   = "Could not delete the session."
)

type Unit struct {
	*syncunit.Base
	repo    movementRepo
	ensurer userEnsurer

	weekGen syncunit.Generation
	goalGen syncunit.Generation

	week []Session
	goal *Goal
}

func NewUnit(repo movementRepo, ensurer userEnsurer, opts syncunit.Options) *Unit {
	return &Unit{
		Base:    syncunit.NewBase("movement", opts),
		repo:    repo,
		ensurer: ensurer,
	}
}

type State struct {
	syncunit.Status
	Week            []Session       `json:"week"`
	WeeklyCount     int             `json:"weekly_count"`
	Goal            *int            `json:"goal"`
	ProgressPercent int             `json:"progress_percent"`
	Remaining       *int            `json:"remaining"`
	Latest          []Session       `json:"latest"`
	WeekDates       []string        `json:"week_dates"`
	ByKind          map[string]Stat `json:"by_kind"`
	ByDay           map[string]Stat `json:"by_day"`
	Label           string          `json:"label"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.Week = append([]Session{}, u.week...)
		if u.goal != nil {
			g := u.goal.PerWeekSessions
			st.Goal = &g
		}
	})

	st.WeeklyCount = len(st.Week)
	st.ProgressPercent = progressPercent(st.WeeklyCount, st.Goal)
	if st.Goal != nil {
		remaining := max(*st.Goal-st.WeeklyCount, 0)
		st.Remaining = &remaining
	}
	st.Latest = st.Week[:min(latestCount, len(st.Week))]
	st.WeekDates = make([]string, 0, len(st.Week))
	st.ByKind = map[string]Stat{}
	st.ByDay = map[string]Stat{}
	for _, s := range st.Week {
		day := daterange.DayKey(s.PerformedAt)
		st.WeekDates = append(st.WeekDates, day)

		kind := unknownKind
		if s.Kind != nil && *s.Kind != "" {
			kind = *s.Kind
		}
		st.ByKind[kind] = addSession(st.ByKind[kind], s)
		st.ByDay[day] = addSession(st.ByDay[day], s)
	}
	st.Label = statusLabel(st.Remaining)
	return st
}

func addSession(stat Stat, s Session) Stat {
	stat.Count++
	if s.DurationMinutes != nil {
		stat.DurationMinutes += *s.DurationMinutes
	}
	return stat
}

func progressPercent(count int, goal *int) int {
	if goal == nil || *goal <= 0 {
		return 0
	}
	pct := int(math.Round(float64(count) / float64(*goal) * 100))
	return max(0, min(100, pct))
}

func statusLabel(remaining *int) string {
	switch {
	case remaining == nil:
		return "Set a weekly goal to track your progress."
	case *remaining == 0:
		return "Weekly goal reached."
	case *remaining == 1:
		return "One more session to reach your goal."
	default:
		return fmt.Sprintf("%d more sessions to reach your goal.", *remaining)
	}
}

// NextGoal applies delta to current and clamps the result. A zero result counts as one.
func NextGoal(current, delta int) int {
	next := current + delta
	if next == 0 {
		next = MinGoal
	}
	return max(MinGoal, min(MaxGoal, next))
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() {
		u.week = nil
		u.goal = nil
	})
	if user == nil {
		return
	}

	if err := u.ensurer.EnsureUserData(ctx, user); err != nil {
		log.Warnf("movement: ensure user data for %s: %s", user.ID, err)
	}
	u.Refresh(ctx)
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.LoadWeek(ctx)
	u.LoadGoal(ctx)
}

// LoadWeek loads the sessions since Monday, newest first.
func (u *Unit) LoadWeek(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.week = nil })
		return
	}

	tok := u.BeginLoad(&u.weekGen, user)
	defer u.EndLoad(tok)

	start := daterange.WeekStart(u.Now())
	sessions, err := u.repo.SessionsBetween(ctx, user.ID, start, start.AddDate(0, 0, 7))
	if err != nil {
		if u.HandleLoadError("load week", err, msgLoadWeek) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.week = nil })
		}
		return
	}
	u.Apply(tok, func() { u.week = sessions })
}

func (u *Unit) LoadGoal(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.goal = nil })
		return
	}

	tok := u.BeginLoad(&u.goalGen, user)
	defer u.EndLoad(tok)

	goal, err := u.repo.ActiveGoal(ctx, user.ID)
	if err != nil {
		if u.HandleLoadError("load goal", err, msgLoadGoal) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.goal = nil })
		}
		return
	}
	u.Apply(tok, func() { u.goal = goal })
}

// Record stores a performed session. A template fills in the kind and duration the
// input leaves out.
func (u *Unit) Record(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.movement.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	s := NewSession{
		PerformedAt:     u.Now(),
		DurationMinutes: in.DurationMinutes,
	}
	if in.PerformedAt != nil {
		s.PerformedAt = *in.PerformedAt
	}
	if kind := strings.TrimSpace(in.Kind); kind != "" {
		s.Kind = &kind
	}
	if key := strings.TrimSpace(in.TemplateKey); key != "" {
		tpl := catalog.TemplateByKey(key)
		if tpl == nil {
			return u.Invalid(fmt.Sprintf("Unknown workout template %q.", key))
		}
		s.TemplateKey = &key
		if s.Kind == nil {
			kind := string(tpl.Kind)
			s.Kind = &kind
		}
		if s.DurationMinutes == nil {
			minutes := tpl.TargetDurationMinutes
			s.DurationMinutes = &minutes
		}
	}

	if err := u.repo.InsertSession(ctx, user.ID, s); err != nil {
		u.HandleSaveError("record", err, msgRecord)
		return err
	}

	u.MarkWritten()
	u.LoadWeek(ctx)
	return nil
}

// ChangeGoal moves the weekly goal by delta within [MinGoal, MaxGoal].
func (u *Unit) ChangeGoal(ctx context.Context, delta int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.movement.changeGoal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	var current *Goal
	u.View(func(syncunit.Status) {
		if u.goal != nil {
			g := *u.goal
			current = &g
		}
	})

	if current == nil {
		next := NextGoal(0, delta)
		id, err := u.repo.InsertGoal(ctx, user.ID, next)
		if err != nil {
			u.HandleSaveError("insert goal", err, msgGoal)
			return err
		}
		u.Update(func() { u.goal = &Goal{ID: id, PerWeekSessions: next} })
		u.MarkWritten()
		return nil
	}

	next := NextGoal(current.PerWeekSessions, delta)
	if next == current.PerWeekSessions {
		return nil
	}
	if err := u.repo.UpdateGoal(ctx, user.ID, current.ID, next); err != nil {
		u.HandleSaveError("update goal", err, msgGoal)
		return err
	}
	u.Update(func() {
		if u.goal != nil && u.goal.ID == current.ID {
			u.goal.PerWeekSessions = next
		}
	})
	u.MarkWritten()
	return nil
}

func (u *Unit) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.movement.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	if id <= 0 {
		return u.Invalid("Invalid session id.")
	}
	return u.deleteAndReload(ctx, user, id)
}

// DeleteOnDate removes the newest session performed on date (YYYY-MM-DD, local day).
func (u *Unit) DeleteOnDate(ctx context.Context, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.movement.deleteOnDate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	day, err := daterange.ParseDay(date, u.Location())
	if err != nil {
		return u.Invalid("Dates must look like YYYY-MM-DD.")
	}

	start, end := daterange.DayBounds(day)
	sessions, err := u.repo.SessionsBetween(ctx, user.ID, start, end)
	if err != nil {
		u.HandleSaveError("find on date", err, msgDelete)
		return err
	}
	if len(sessions) == 0 {
		return store.Classify(tableSessions, "delete", pgx.ErrNoRows)
	}
	return u.deleteAndReload(ctx, user, sessions[0].ID)
}

// RemoveLast deletes the most recent session of the week. It is a no-op on an empty week.
func (u *Unit) RemoveLast(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.movement.removeLast")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	var weekly int
	u.View(func(syncunit.Status) { weekly = len(u.week) })
	if weekly == 0 {
		return nil
	}

	last, err := u.repo.LastSession(ctx, user.ID)
	if err != nil {
		u.HandleSaveError("find last", err, msgDelete)
		return err
	}
	if last == nil {
		u.LoadWeek(ctx)
		return nil
	}
	return u.deleteAndReload(ctx, user, last.ID)
}

func (u *Unit) deleteAndReload(ctx context.Context, user *session.User, id int64) error {
	if err := u.repo.DeleteSession(ctx, user.ID, id); err != nil {
		if !store.IsNotFound(err) {
			u.HandleSaveError("delete", err, msgDelete)
		}
		return err
	}
	u.MarkWritten()
	u.LoadWeek(ctx)
	return nil
}

// MonthDates lists the UTC days of a month with at least one session.
func (u *Unit) MonthDates(ctx context.Context, year, monthIndex int) ([]string, error) {
	user := u.CurrentUser()
	if user == nil {
		return []string{}, nil
	}

	start, end := daterange.MonthRangeUTC(year, monthIndex)
	ts, err := u.repo.PerformedAtBetween(ctx, user.ID, start, end)
	if err != nil {
		return []string{}, u.HandleQueryError("month dates", err)
	}
	return aggregate.DistinctDays(ts), nil
}
