package urgelog

import "time"

type Trigger string

const (
	TriggerStress     Trigger = "stress"
	TriggerBoredom    Trigger = "boredom"
	TriggerLoneliness Trigger = "loneliness"
	TriggerAnger      Trigger = "anger"
	TriggerCuriosity  Trigger = "curiosity"
	TriggerHabit      Trigger = "habit"
)

// UrgeLog is an immutable record of a single urge event. The derived reward
// fields are computed exactly once when the log is created and are never
// recomputed on read.
type UrgeLog struct {
	ID                   int       `json:"id"`
	UserID               int       `json:"userId"`
	Intensity            int       `json:"intensity"`
	Trigger              Trigger   `json:"trigger"`
	EmotionalState       string    `json:"emotionalState,omitempty"`
	CopingStrategy       string    `json:"copingStrategy,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
	TransformationPoints int       `json:"transformationPoints"`
	SpiritualGrowth      int       `json:"spiritualGrowth"`
}
