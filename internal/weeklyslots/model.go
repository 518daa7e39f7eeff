package weeklyslots

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case Morning, Afternoon, Evening:
		return true
	}
	return false
}

// Slot is a recurring training window. DayIndex 0 is Monday.
type Slot struct {
	DayIndex  int       `json:"day_index" validate:"gte=0,lte=6"`
	TimeOfDay TimeOfDay `json:"time_of_day" validate:"oneof=morning afternoon evening"`
}

type Input struct {
	Slots []Slot `json:"slots" validate:"max=21,dive"`
}
