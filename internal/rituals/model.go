package rituals

type Moment string

const (
	MomentMorning Moment = "morning"
	MomentMidday  Moment = "midday"
	MomentEvening Moment = "evening"
)

var Moments = []Moment{MomentMorning, MomentMidday, MomentEvening}

func (m Moment) Valid() bool {
	switch m {
	case MomentMorning, MomentMidday, MomentEvening:
		return true
	}
	return false
}

type Focus string

const (
	FocusMove   Focus = "move"
	FocusStress Focus = "stress"
	FocusBoth   Focus = "both"
)

type Ritual struct {
	ID          int64   `json:"id"`
	Moment      Moment  `json:"moment"`
	Focus       *Focus  `json:"focus"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
}

type Input struct {
	Focus       Focus   `json:"focus" validate:"omitempty,oneof=move stress both"`
	Title       string  `json:"title" validate:"max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool   `json:"is_active"`
}

// body is the normalized column set written for an Input.
type body struct {
	Focus       *string
	Title       string
	Description *string
	IsActive    bool
}
