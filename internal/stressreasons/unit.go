package stressreasons

import (
	"context"
	"strings"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type reasonsRepo interface {
	Newest(ctx context.Context, userID string, limit int) ([]Reason, error)
	Insert(ctx context.Context, userID, reason string, category *string) error
	Delete(ctx context.Context, userID string, id int64) error
}

const loadLimit = 50

const (
	msgLoad   = "Could not load your stress reasons."
	msgSave   = "Could not save this stress reason."
	msgDelete = "Could not delete this stress reason."
)

type Unit struct {
	*syncunit.Base
	repo reasonsRepo

	gen     syncunit.Generation
	reasons []Reason
}

func NewUnit(repo reasonsRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("stressreasons", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Reasons []Reason `json:"reasons"`
	Count   int      `json:"count"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.Reasons = append([]Reason{}, u.reasons...)
	})
	st.Count = len(st.Reasons)
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() { u.reasons = nil })
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.Load(ctx)
}

// Load keeps the newest 50 reasons.
func (u *Unit) Load(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.reasons = nil })
		return
	}

	tok := u.BeginLoad(&u.gen, user)
	defer u.EndLoad(tok)

	reasons, err := u.repo.Newest(ctx, user.ID, loadLimit)
	if err != nil {
		if u.HandleLoadError("load", err, msgLoad) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.reasons = nil })
		}
		return
	}
	u.Apply(tok, func() { u.reasons = reasons })
}

func (u *Unit) Save(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.stressreasons.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return u.Invalid("Write down what stressed you.")
	}
	var category *string
	if in.Category != nil {
		if c := strings.TrimSpace(*in.Category); c != "" {
			category = &c
		}
	}

	if err := u.repo.Insert(ctx, user.ID, reason, category); err != nil {
		u.HandleSaveError("save", err, msgSave)
		return err
	}

	u.MarkWritten()
	u.Load(ctx)
	return nil
}

// Delete removes a reason and drops it from the loaded list without reloading.
func (u *Unit) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.stressreasons.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	if id <= 0 {
		return u.Invalid("Unknown stress reason.")
	}

	if err := u.repo.Delete(ctx, user.ID, id); err != nil {
		u.HandleSaveError("delete", err, msgDelete)
		return err
	}

	u.MarkWritten()
	u.Update(func() {
		kept := u.reasons[:0:0]
		for _, r := range u.reasons {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		u.reasons = kept
	})
	return nil
}
