// Package notifications writes reminder preferences and registers push subscriptions.
// Neither keeps state between calls.
package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/motivly/internal/aggregate"
	"github.com/2beens/motivly/internal/session"
	"github.com/2beens/motivly/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrInvalidTime      = errors.New("invalid time")
)

type preferencesRepo interface {
	UpsertPreferences(ctx context.Context, p Preferences) error
	Preferences(ctx context.Context, userID string) (*Preferences, error)
}

type PreferencesWriter struct {
	repo preferencesRepo
}

func NewPreferencesWriter(repo preferencesRepo) *PreferencesWriter {
	return &PreferencesWriter{
		repo: repo,
	}
}

// Save flattens slots into the user's preferences row. Slots that are missing
// from the list are stored disabled at their default time.
func (w *PreferencesWriter) Save(ctx context.Context, user *session.User, slots []SlotInput) (_ Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifications.preferences.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if user == nil {
		return Preferences{}, ErrNotAuthenticated
	}

	p, err := Flatten(user.ID, slots)
	if err != nil {
		return Preferences{}, err
	}
	if err := w.repo.UpsertPreferences(ctx, p); err != nil {
		log.Errorf("save notification preferences for %s: %s", user.ID, err)
		return Preferences{}, err
	}
	return p, nil
}

// Load returns the saved preferences, or the defaults when none were saved.
func (w *PreferencesWriter) Load(ctx context.Context, user *session.User) (Preferences, error) {
	if user == nil {
		return Preferences{}, ErrNotAuthenticated
	}
	p, err := w.repo.Preferences(ctx, user.ID)
	if err != nil {
		return Preferences{}, err
	}
	if p == nil {
		return Flatten(user.ID, nil)
	}
	return *p, nil
}

// Flatten maps the named slots onto a preferences row. A later slot with the same id wins.
func Flatten(userID string, slots []SlotInput) (Preferences, error) {
	byID := make(map[SlotName]SlotInput, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	slot := func(name SlotName) (bool, string, error) {
		s, ok := byID[name]
		if !ok || s.Time == "" {
			return s.Enabled, defaultTimes[name], nil
		}
		minutes, ok := aggregate.ParseClock(s.Time)
		if !ok {
			return false, "", fmt.Errorf("%w for %s: %q", ErrInvalidTime, name, s.Time)
		}
		return s.Enabled, aggregate.FormatClock(minutes), nil
	}

	p := Preferences{UserID: userID}
	var err error
	if p.MorningEnabled, p.MorningTime, err = slot(SlotMorning); err != nil {
		return Preferences{}, err
	}
	if p.MiddayEnabled, p.MiddayTime, err = slot(SlotMidday); err != nil {
		return Preferences{}, err
	}
	if p.EveningEnabled, p.EveningTime, err = slot(SlotEvening); err != nil {
		return Preferences{}, err
	}
	return p, nil
}
