package resources

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type resourcesRepo interface {
	Insert(ctx context.Context, userID string, occurredAt time.Time, in Input) error
	Between(ctx context.Context, userID string, from, to time.Time) ([]Event, error)
}

const recentDays = 7

const (
	msgLoad = "Could not load your recent resources."
	msgLog  = "Could not record this resource."
)

type Unit struct {
	*syncunit.Base
	repo resourcesRepo

	gen    syncunit.Generation
	recent []Event
}

func NewUnit(repo resourcesRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("resources", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	Recent       []Event              `json:"recent"`
	CountByType  map[ResourceType]int `json:"count_by_type"`
	TotalSeconds int                  `json:"total_seconds"`
}

func (u *Unit) State() State {
	var st State
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.Recent = append([]Event{}, u.recent...)
	})

	st.CountByType = make(map[ResourceType]int, len(Types))
	for _, t := range Types {
		st.CountByType[t] = 0
	}
	for _, e := range st.Recent {
		st.CountByType[e.ResourceType]++
		if e.DurationSeconds != nil {
			st.TotalSeconds += *e.DurationSeconds
		}
	}
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() { u.recent = nil })
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.LoadRecent(ctx)
}

func (u *Unit) LoadRecent(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() { u.recent = nil })
		return
	}

	tok := u.BeginLoad(&u.gen, user)
	defer u.EndLoad(tok)

	from, to := daterange.RollingWindow(u.Now(), recentDays)
	events, err := u.repo.Between(ctx, user.ID, from, to)
	if err != nil {
		if u.HandleLoadError("load recent", err, msgLoad) == syncunit.OutcomeEmpty {
			u.Apply(tok, func() { u.recent = nil })
		}
		return
	}
	u.Apply(tok, func() { u.recent = events })
}

// Log records one use of a resource. Logging is best effort: when the table does not
// exist yet the event is dropped without a message.
func (u *Unit) Log(ctx context.Context, in Input) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.resources.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	in.Source = strings.TrimSpace(in.Source)
	in.ResourceKey = strings.TrimSpace(in.ResourceKey)
	if in.Source == "" || !in.ResourceType.Valid() {
		return u.Invalid("Unknown resource.")
	}

	if err := u.repo.Insert(ctx, user.ID, u.Now(), in); err != nil {
		if store.IsAbsentSchema(err) {
			log.Debugf("[resources] log dropped, schema not migrated: %s", err)
			return nil
		}
		u.HandleSaveError("log", err, msgLog)
		return err
	}

	u.MarkWritten()
	u.LoadRecent(ctx)
	return nil
}
