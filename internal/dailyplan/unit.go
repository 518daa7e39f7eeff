package dailyplan

import (
	"context"
	"time"

	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type planRepo interface {
	LatestSlot(ctx context.Context, userID string, start, end time.Time) (*string, error)
	LatestIntention(ctx context.Context, userID string, start, end time.Time) (*string, error)
	InsertSlot(ctx context.Context, userID string, slot Slot) error
	InsertIntention(ctx context.Context, userID string, intention Intention) error
}

const (
	msgLoad = "Could not load your plan for today."
	msgSave = "Could not save your plan for today."
)

type Unit struct {
	*syncunit.Base
	repo planRepo

	slotGen      syncunit.Generation
	intentionGen syncunit.Generation

	slot      *Slot
	intention *Intention
}

func NewUnit(repo planRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("dailyplan", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	TodaySlot      *Slot      `json:"today_slot"`
	TodayIntention *Intention `json:"today_intention"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.TodaySlot = u.slot
		st.TodayIntention = u.intention
	})
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() {
		u.slot = nil
		u.intention = nil
	})
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.LoadToday(ctx)
}

// LoadToday reads the newest slot and intention of the local day. The two tables are
// handled independently, a failure on one keeps the other's result.
func (u *Unit) LoadToday(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() {
			u.slot = nil
			u.intention = nil
		})
		return
	}
	start, end := daterange.DayBounds(u.Now())

	slotTok := u.BeginLoad(&u.slotGen, user)
	v, err := u.repo.LatestSlot(ctx, user.ID, start, end)
	switch {
	case err == nil:
		u.Apply(slotTok, func() { u.slot = parseSlot(v) })
	case u.HandleLoadError("load slot", err, msgLoad) == syncunit.OutcomeEmpty:
		u.Apply(slotTok, func() { u.slot = nil })
	}
	u.EndLoad(slotTok)

	intentionTok := u.BeginLoad(&u.intentionGen, user)
	v, err = u.repo.LatestIntention(ctx, user.ID, start, end)
	switch {
	case err == nil:
		u.Apply(intentionTok, func() { u.intention = parseIntention(v) })
	case u.HandleLoadError("load intention", err, msgLoad) == syncunit.OutcomeEmpty:
		u.Apply(intentionTok, func() { u.intention = nil })
	}
	u.EndLoad(intentionTok)
}

// Save appends both choices concurrently and waits for both. Each successful write
// updates its own value even when the other one failed.
func (u *Unit) Save(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.dailyplan.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	if !in.Slot.Valid() || !in.Intention.Valid() {
		return u.Invalid("Pick a time slot and an intention.")
	}

	// No derived context: a failed insert must not cancel the other one. Wait
	// only reports the first error, so each branch keeps its own for the
	// partial update below.
	var slotErr, intentionErr error
	var g errgroup.Group
	g.Go(func() error {
		slotErr = u.repo.InsertSlot(ctx, user.ID, in.Slot)
		return slotErr
	})
	g.Go(func() error {
		intentionErr = u.repo.InsertIntention(ctx, user.ID, in.Intention)
		return intentionErr
	})

	slot, intention := in.Slot, in.Intention
	if g.Wait() == nil {
		u.Update(func() {
			u.slot = &slot
			u.intention = &intention
		})
		u.MarkWritten()
		return nil
	}

	if slotErr != nil {
		u.HandleSaveError("save slot", slotErr, msgSave)
	} else {
		u.Update(func() { u.slot = &slot })
	}
	if intentionErr != nil {
		u.HandleSaveError("save intention", intentionErr, msgSave)
	} else {
		u.Update(func() { u.intention = &intention })
	}

	if slotErr == nil || intentionErr == nil {
		u.MarkWritten()
	}
	return multierr.Combine(slotErr, intentionErr)
}
