package checkins

import "time"

type Moment string

const (
	MomentMidday  Moment = "midday"
	MomentEvening Moment = "evening"
)

func (m Moment) Valid() bool {
	return m == MomentMidday || m == MomentEvening
}

type Checkin struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Day         *string   `json:"day,omitempty"`
	StressLevel *int      `json:"stress_level"`
	Note        *string   `json:"note"`
	Question    *string   `json:"question"`
	Moment      Moment    `json:"moment"`
}

type Input struct {
	StressLevel int     `json:"stress_level" validate:"gte=0,lte=10"`
	Note        *string `json:"note"`
	Question    *string `json:"question"`
	Moment      Moment  `json:"moment" validate:"omitempty,oneof=midday evening"`
}
