package stressreasons

import "time"

type Reason struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Reason    string    `json:"reason"`
	Category  *string   `json:"category"`
}

type Input struct {
	Reason   string  `json:"reason" validate:"max=500"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}
