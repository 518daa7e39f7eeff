package profile

import (
	"context"
	"strings"

	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/store"
	"github.com/2beens/motivly/internal/syncunit"
	"github.com/2beens/motivly/internal/telemetry/tracing"
)

type profileRepo interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	UpsertName(ctx context.Context, userID string, name *string) error
}

const (
	msgLoad  = "Could not load your profile."
	msgSave  = "Could not save your name."
	msgTaken = "That name is already taken."
)

// Unit holds the display name shown for the current user.
type Unit struct {
	*syncunit.Base
	repo profileRepo

	gen         syncunit.Generation
	displayName string
	email       string
}

func NewUnit(repo profileRepo, opts syncunit.Options) *Unit {
	return &Unit{
		Base: syncunit.NewBase("profile", opts),
		repo: repo,
	}
}

type State struct {
	syncunit.Status
	DisplayName string `json:"display_name"`
	Initial     string `json:"initial"`
}

func (u *Unit) State() State {
	var st State
	var email string
	u.View(func(status syncunit.Status) {
		st.Status = status
		st.DisplayName = u.displayName
		email = u.email
	})
	st.Initial = Initial(st.DisplayName, email)
	return st
}

func (u *Unit) OnSessionChange(ctx context.Context, user *session.User) {
	u.BindUser(user, func() {
		u.displayName = ""
		u.email = ""
	})
	if user != nil {
		u.Refresh(ctx)
	}
}

func (u *Unit) Refresh(ctx context.Context) {
	u.ClearError()
	u.Load(ctx)
}

// Load picks the username, then the display name, then the email.
func (u *Unit) Load(ctx context.Context) {
	user := u.CurrentUser()
	if user == nil {
		u.Update(func() {
			u.displayName = ""
			u.email = ""
		})
		return
	}

	tok := u.BeginLoad(&u.gen, user)
	defer u.EndLoad(tok)

	p, err := u.repo.Get(ctx, user.ID)
	if err != nil && u.HandleLoadError("load", err, msgLoad) == syncunit.OutcomeFailed {
		return
	}

	name := user.Email
	if p != nil {
		switch {
		case p.Username != nil && strings.TrimSpace(*p.Username) != "":
			name = *p.Username
		case p.DisplayName != nil && strings.TrimSpace(*p.DisplayName) != "":
			name = *p.DisplayName
		}
	}
	u.Apply(tok, func() {
		u.displayName = name
		u.email = user.Email
	})
}

// SaveDisplayName stores name as both username and display name. A blank name
// clears both.
func (u *Unit) SaveDisplayName(ctx context.Context, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "unit.profile.saveDisplayName")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := u.BeginSave()
	if err != nil {
		return err
	}
	defer u.EndSave()

	var stored *string
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		stored = &trimmed
	}

	if err := u.repo.UpsertName(ctx, user.ID, stored); err != nil {
		msg := msgSave
		if store.IsUniqueViolation(err) {
			msg = msgTaken
		}
		u.HandleSaveError("save name", err, msg)
		return err
	}

	u.MarkWritten()
	u.Update(func() {
		if stored != nil {
			u.displayName = *stored
		} else {
			u.displayName = user.Email
		}
	})
	return nil
}
