// Package workspace groups the sync units of one signed in user behind a single
// session provider.
package workspace

import (
	"context"
	"time"

	"github.com/2beens/motivly/internal/checkins"
	"github.com/2beens/motivly/internal/dailyplan"
	"github.com/2beens/motivly/internal/daterange"
	"github.com/2beens/motivly/internal/morning"
	"github.com/2beens/motivly/internal/movement"
	"github.com/2beens/motivly/internal/profile"
	"github.com/2beens/motivly/internal/reflections"
	"github.com/2beens/motivly/internal/resources"
	"github.com/2beens/motivly/internal/rituals"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/stressreasons"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/metrics"
	"github.com/2beens/motivly/internal/weeklyslots"
)

type Deps struct {
	DB           store.TxDB
	Bootstrapper *profile.Bootstrapper
	Metrics      *metrics.Manager
	Location     *time.Location
	Now          func() time.Time
}

type Workspace struct {
	provider *session.Provider
	now      func() time.Time
	loc      *time.Location

	Checkins      *checkins.Unit
	Morning       *morning.Unit
	Plan          *dailyplan.Unit
	Reflections   *reflections.Unit
	Rituals       *rituals.Unit
	StressReasons *stressreasons.Unit
	Resources     *resources.Unit
	Movement      *movement.Unit
	WeeklySlots   *weeklyslots.Unit
	Profile       *profile.Unit

	units []syncunit.Unit
}

// New builds every unit and subscribes it to a fresh provider. No user is bound yet.
func New(deps Deps) *Workspace {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	if deps.Bootstrapper == nil {
		deps.Bootstrapper = profile.NewBootstrapper(profile.NewRepo(deps.DB))
	}
	opts := syncunit.Options{
		Now:      deps.Now,
		Location: deps.Location,
		Metrics:  deps.Metrics,
	}

	w := &Workspace{
		provider:      session.NewProvider(),
		now:           deps.Now,
		loc:           deps.Location,
		Checkins:      checkins.NewUnit(checkins.NewRepo(deps.DB), opts),
		Morning:       morning.NewUnit(morning.NewRepo(deps.DB), opts),
		Plan:          dailyplan.NewUnit(dailyplan.NewRepo(deps.DB), opts),
		Reflections:   reflections.NewUnit(reflections.NewRepo(deps.DB), opts),
		Rituals:       rituals.NewUnit(rituals.NewRepo(deps.DB), opts),
		StressReasons: stressreasons.NewUnit(stressreasons.NewRepo(deps.DB), opts),
		Resources:     resources.NewUnit(resources.NewRepo(deps.DB), opts),
		Movement:      movement.NewUnit(movement.NewRepo(deps.DB), deps.Bootstrapper, opts),
		WeeklySlots:   weeklyslots.NewUnit(weeklyslots.NewRepo(deps.DB), opts),
		Profile:       profile.NewUnit(profile.NewRepo(deps.DB), opts),
	}
	w.units = []syncunit.Unit{
		w.Profile,
		w.Movement,
		w.Checkins,
		w.Morning,
		w.Plan,
		w.Reflections,
		w.Rituals,
		w.StressReasons,
		w.Resources,
		w.WeeklySlots,
	}
	for _, u := range w.units {
		w.provider.Subscribe(u)
	}
	return w
}

// Activate binds user and lets every unit load its data.
func (w *Workspace) Activate(ctx context.Context, user *session.User) {
	w.provider.Set(ctx, user)
}

// Deactivate unbinds the user. Units drop their state.
func (w *Workspace) Deactivate(ctx context.Context) {
	w.provider.Set(ctx, nil)
}

func (w *Workspace) User() *session.User {
	return w.provider.Current()
}

func (w *Workspace) Units() []syncunit.Unit {
	return w.units
}

// Refresh reloads every unit, one after the other.
func (w *Workspace) Refresh(ctx context.Context) {
	for _, u := range w.units {
		u.Refresh(ctx)
	}
}

// Today is the dashboard view over every unit.
type Today struct {
	Date          string              `json:"date"`
	User          *session.User       `json:"user"`
	Profile       profile.State       `json:"profile"`
	Checkins      checkins.State      `json:"checkins"`
	Morning       morning.State       `json:"morning"`
	Plan          dailyplan.State     `json:"plan"`
	Reflection    reflections.State   `json:"reflection"`
	Rituals       rituals.State       `json:"rituals"`
	StressReasons stressreasons.State `json:"stress_reasons"`
	Resources     resources.State     `json:"resources"`
	Movement      movement.State      `json:"movement"`
	WeeklySlots   weeklyslots.State   `json:"weekly_slots"`
	// Errors maps a unit name to its current user facing error.
	Errors map[string]string `json:"errors"`
}

func (w *Workspace) Snapshot() Today {
	t := Today{
		Date:          daterange.LocalDay(w.now().In(w.loc)),
		User:          w.User(),
		Profile:       w.Profile.State(),
		Checkins:      w.Checkins.State(),
		Morning:       w.Morning.State(),
		Plan:          w.Plan.State(),
		Reflection:    w.Reflections.State(),
		Rituals:       w.Rituals.State(),
		StressReasons: w.StressReasons.State(),
		Resources:     w.Resources.State(),
		Movement:      w.Movement.State(),
		WeeklySlots:   w.WeeklySlots.State(),
		Errors:        map[string]string{},
	}
	for _, u := range w.units {
		if msg := u.Status().Error; msg != nil {
			t.Errors[u.Name()] = *msg
		}
	}
	return t
}
