package dailyplan

type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotNoon      Slot = "noon"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
	SlotUnknown   Slot = "unknown"
)

func (s Slot) Valid() bool {
	switch s {
	case SlotMorning, SlotNoon, SlotAfternoon, SlotEvening, SlotUnknown:
		return true
	}
	return false
}

type Intention string

const (
	IntentionCalm     Intention = "calme"
	IntentionRelax    Intention = "detente"
	IntentionMobility Intention = "mobilite"
	IntentionPresence Intention = "presence"
	IntentionNone     Intention = "none"
)

func (i Intention) Valid() bool {
	switch i {
	case IntentionCalm, IntentionRelax, IntentionMobility, IntentionPresence, IntentionNone:
		return true
	}
	return false
}

// parseSlot reads a stored value. Values written by older clients read as nil.
func parseSlot(v *string) *Slot {
	if v == nil || !Slot(*v).Valid() {
		return nil
	}
	s := Slot(*v)
	return &s
}

func parseIntention(v *string) *Intention {
	if v == nil || !Intention(*v).Valid() {
		return nil
	}
	i := Intention(*v)
	return &i
}

type Input struct {
	Slot      Slot      `json:"slot" validate:"required"`
	Intention Intention `json:"intention" validate:"required"`
}
