package notifications

import "time"

type SlotName string

const (
	SlotMorning SlotName = "morning"
	SlotMidday  SlotName = "midday"
	SlotEvening SlotName = "evening"
)

var defaultTimes = map[SlotName]string{
	SlotMorning: "08:00",
	SlotMidday:  "12:00",
	SlotEvening: "21:30",
}

type SlotInput struct {
	ID      SlotName `json:"id" validate:"required,oneof=morning midday evening"`
	Enabled bool     `json:"enabled"`
	Time    string   `json:"time" validate:"omitempty,clock"`
}

type PreferencesInput struct {
	Slots []SlotInput `json:"slots" validate:"dive"`
}

// Preferences is one notification_preferences row.
type Preferences struct {
	UserID         string    `json:"user_id"`
	MorningEnabled bool      `json:"morning_enabled"`
	MorningTime    string    `json:"morning_time"`
	MiddayEnabled  bool      `json:"midday_enabled"`
	MiddayTime     string    `json:"midday_time"`
	EveningEnabled bool      `json:"evening_enabled"`
	EveningTime    string    `json:"evening_time"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Keys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type Subscription struct {
	Endpoint string `json:"endpoint" validate:"required,url,max=2048"`
	Keys     Keys   `json:"keys"`
}
