package morning

import "time"

type MorningState struct {
	ID            int64     `json:"id"`
	DayDate       string    `json:"day_date"`
	CreatedAt     time.Time `json:"created_at"`
	MoodLevel     *int      `json:"mood_level"`
	EnergyLevel   *int      `json:"energy_level"`
	Priorities    []string  `json:"priorities"`
	SleepBedTime  *string   `json:"sleep_bed_time"`
	SleepWakeTime *string   `json:"sleep_wake_time"`
}

// Input is what the morning form sends. Energy is picked on a 0-4 scale.
type Input struct {
	Mood       *int     `json:"mood" validate:"omitempty,gte=0,lte=10"`
	Energy     *int     `json:"energy" validate:"omitempty,gte=0,lte=4"`
	Priorities []string `json:"priorities" validate:"max=10,dive,max=120"`
	BedTime    *string  `json:"bed_time"`
	WakeTime   *string  `json:"wake_time"`
}

// row is the stored form of an Input.
type row struct {
	MoodLevel     *int
	EnergyLevel   *int
	Priorities    []string
	SleepBedTime  *string
	SleepWakeTime *string
}
