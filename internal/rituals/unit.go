package rituals

import (
	"context"
	"strings"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type ritualsRepo interface {
	List(ctx context.Context, userID string) ([]Ritual, error)
	Insert(ctx context.Context, userID string, moment Moment, b body) error
	Update(ctx context.Context, userID string, moment Moment, b body) error
}

const (
	msgLoad = "Could not load your rituals."
	msgSave = "Could not save this ritual."
)

type Unit struct {
	*syncunit.Base
	repo ritualsRepo

	gen     syncunit.Generation
	rituals []Ritual
}

func NewUnit(repo ritualsRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("rituals", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Rituals  []Ritual           `json:"rituals"`
	ByMoment map[Moment]*Ritual `json:"by_moment"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.Rituals = append([]Ritual{}, u.rituals...)
	})
	st.ByMoment = ByMoment(st.Rituals)
	return st
}

// ByMoment maps every moment to its active ritual, or nil.
func ByMoment(rituals []Ritual) map[Moment]*Ritual {
	out := make(map[Moment]*Ritual, len(Moments))
	for _, m := range Moments {
		out[m] = nil
	}
	for i := range rituals {
		if !rituals[i].IsActive {
			continue
		}
		rt := rituals[i]
		out[rt.Moment] = &rt
	}
	return out
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() { u.rituals = nil })
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.Load(ctx)
}

func (u *Unit) Load(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.rituals = nil })
		return
	}

	tok := u.BeginLoad(&u.gen, user)
	defer u.EndLoad(tok)

	rituals, err := u.repo.List(ctx, user.ID)
	if err != nil {
		if u.HandleLoadError("load", err, msgLoad) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.rituals = nil })
		}
		return
	}
	u.Apply(tok, func() { u.rituals = rituals })
}

// Upsert writes the ritual of moment. The loaded ritual of that moment is updated,
// otherwise a new one is inserted; a concurrent insert falls back to an update.
func (u *Unit) Upsert(ctx context.Context, moment Moment, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.rituals.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	if !moment.Valid() {
		return u.Invalid("Unknown ritual moment.")
	}
	b := body{
		Title:    strings.TrimSpace(in.Title),
		IsActive: true,
	}
	if b.Title == "" {
		return u.Invalid("A ritual needs a title.")
	}
	if in.Focus != "" {
		focus := string(in.Focus)
		b.Focus = &focus
	}
	if in.Description != nil {
		if d := strings.TrimSpace(*in.Description); d != "" {
			b.Description = &d
		}
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}

	exists := false
	u.View(func(syncunit.Status) {
		for _, rt := range u.rituals {
			if rt.Moment == moment {
				exists = true
				return
			}
		}
	})

	if exists {
		err = u.repo.Update(ctx, user.ID, moment, b)
	} else {
		err = u.repo.Insert(ctx, user.ID, moment, b)
		if store.IsUniqueViolation(err) {
			err = u.repo.Update(ctx, user.ID, moment, b)
		}
	}
	if err != nil {
		u.HandleSaveError("upsert", err, msgSave)
		return err
	}

	u.MarkWritten()
	u.Load(ctx)
	return nil
}
