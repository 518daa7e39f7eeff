package reflections

import (
	"context"
	"strings"

	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type reflectionsRepo interface {
	ForDay(ctx context.Context, userID, day string) (*Reflection, error)
	Upsert(ctx context.Context, userID, day string, mindset, gratitude *string) error
}

const (
	msgLoad = "Could not load today's notes."
	msgSave = "Could not save today's notes."
)

type Unit struct {
	*syncunit.Base
	repo reflectionsRepo

	todayGen syncunit.Generation
	today    *Reflection
}

func NewUnit(repo reflectionsRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("reflections", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Today *Reflection `json:"today"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		if u.today != nil {
			today := *u.today
			st.Today = &today
		}
	})
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() { u.today = nil })
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.LoadToday(ctx)
}

func (u *Unit) LoadToday(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.today = nil })
		return
	}

	tok := u.BeginLoad(&u.todayGen, user)
	defer u.EndLoad(tok)

	ref, err := u.repo.ForDay(ctx, user.ID, daterange.LocalDay(u.Now()))
	if err != nil {
		if u.HandleLoadError("load today", err, msgLoad) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.today = nil })
		}
		return
	}
	u.Apply(tok, func() { u.today = ref })
}

func (u *Unit) Save(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.reflections.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	day := daterange.LocalDay(u.Now())
	if err := u.repo.Upsert(ctx, user.ID, day, trimmed(in.Mindset), trimmed(in.Gratitude)); err != nil {
		u.HandleSaveError("save", err, msgSave)
		return err
	}

	u.MarkWritten()
	u.LoadToday(ctx)
	return nil
}

// trimmed returns nil for missing or blank notes.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
