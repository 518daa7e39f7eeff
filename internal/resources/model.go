package resources

import "time"

type ResourceType string

const (
	TypeSound    ResourceType = "sound"
	TypeBreath   ResourceType = "breath"
	TypeExpress  ResourceType = "express"
	TypeMovement ResourceType = "movement"
)

var Types = []ResourceType{TypeSound, TypeBreath, TypeExpress, TypeMovement}

func (t ResourceType) Valid() bool {
	switch t {
	case TypeSound, TypeBreath, TypeExpress, TypeMovement:
		return true
	}
	return false
}

type Event struct {
	ID              int64        `json:"id"`
	OccurredAt      time.Time    `json:"occurred_at"`
	Source          string       `json:"source"`
	ResourceType    ResourceType `json:"resource_type"`
	ResourceKey     *string      `json:"resource_key"`
	DurationSeconds *int         `json:"duration_seconds"`
}

type Input struct {
	Source          string       `json:"source" validate:"required,max=100"`
	ResourceType    ResourceType `json:"resource_type" validate:"required,oneof=sound breath express movement"`
	ResourceKey     string       `json:"resource_key" validate:"max=200"`
	DurationSeconds *int         `json:"duration_seconds" validate:"omitempty,gte=0"`
}
