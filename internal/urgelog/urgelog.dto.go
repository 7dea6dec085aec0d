package urgelog

import "time"

type CreateUrgeLogRequest struct {
	UserID         int        `json:"userId" validate:"required"`
	Intensity      int        `json:"intensity" validate:"required,min=1,max=5"`
	Trigger        Trigger    `json:"trigger" validate:"required"`
	EmotionalState string     `json:"emotionalState,omitempty"`
	CopingStrategy string     `json:"copingStrategy,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}
