package reflections

import "time"

type Reflection struct {
	ID            int64     `json:"id"`
	DayDate       string    `json:"day_date"`
	UpdatedAt     time.Time `json:"updated_at"`
	MindsetNote   *string   `json:"mindset_note"`
	GratitudeNote *string   `json:"gratitude_note"`
}

type Input struct {
	Mindset   *string `json:"mindset_note" validate:"omitempty,max=2000"`
	Gratitude *string `json:"gratitude_note" validate:"omitempty,max=2000"`
}
