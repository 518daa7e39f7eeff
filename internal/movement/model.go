package movement

import "time"

type Session struct {
	ID              int64     `json:"id"`
	PerformedAt     time.Time `json:"performed_at"`
	DurationMinutes *int      `json:"duration_minutes"`
	Kind            *string   `json:"kind"`
	TemplateKey     *string   `json:"template_key"`
}

type Goal struct {
	ID              int64 `json:"id"`
	PerWeekSessions int   `json:"per_week_sessions"`
}

// NewSession is the row written when a session is recorded.
type NewSession struct {
	PerformedAt     time.Time
	DurationMinutes *int
	Kind            *string
	TemplateKey     *string
}

type Input struct {
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gte=1,lte=600"`
	Kind            string     `json:"kind" validate:"omitempty,oneof=cardio strength mobility mixed"`
	TemplateKey     string     `json:"template_key" validate:"max=100"`
	PerformedAt     *time.Time `json:"performed_at"`
}

type GoalInput struct {
	Delta int `json:"delta" validate:"gte=-14,lte=14"`
}

// Stat sums the sessions of a group.
type Stat struct {
	Count           int `json:"count"`
	DurationMinutes int `json:"duration_minutes"`
}
