package weeklyslots

import (
	"context"
	"sort"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type slotsRepo interface {
	List(ctx context.Context, userID string) ([]Slot, error)
	Replace(ctx context.Context, userID string, slots []Slot) error
}

const (
	msgLoad = "Could not load your weekly schedule."
	msgSave = "Could not save your weekly schedule."
)

type Unit struct {
	*syncunit.Base
	repo slotsRepo

	gen   syncunit.Generation
	slots []Slot
}

func NewUnit(repo slotsRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("weeklyslots", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Slots []Slot `json:"slots"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.Slots = append([]Slot{}, u.slots...)
	})
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() { u.slots = nil })
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
		u.Update(func() { u.slots = nil })
		return
	}

	tok := u.BeginLoad(&u.gen, user)
	defer u.EndLoad(tok)

	slots, err := u.repo.List(ctx, user.ID)
	if err != nil {
		if u.HandleLoadError("load", err, msgLoad) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.slots = nil })
		}
		return
	}
	u.Apply(tok, func() { u.slots = slots })
}

// Save replaces the whole schedule. An empty set clears it.
func (u *Unit) Save(ctx context.Context, slots []Slot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.weeklyslots.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	for _, s := range slots {
		if s.DayIndex < 0 || s.DayIndex > 6 || !s.TimeOfDay.Valid() {
			return u.Invalid("Each slot needs a day between 0 and 6 and a time of day.")
		}
	}

	if err := u.repo.Replace(ctx, user.ID, slots); err != nil {
		u.HandleSaveError("save", err, msgSave)
		return err
	}

	saved := append([]Slot{}, slots...)
	sort.SliceStable(saved, func(i, j int) bool { return saved[i].DayIndex < saved[j].DayIndex })
	u.MarkWritten()
	u.Update(func() { u.slots = saved })
	return nil
}
