package task

type Category string

const (
	CategorySpiritual Category = "spiritual"
	CategoryPhysical  Category = "physical"
	CategoryMental    Category = "mental"
	CategorySocial    Category = "social"
	CategoryCreative  Category = "creative"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategorySpiritual, CategoryPhysical, CategoryMental, CategorySocial, CategoryCreative:
		return true
	}
	return false
}

// Task is static reference data; completion state lives in its own record.
type Task struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Category        Category `json:"category"`
	DurationMinutes int      `json:"duration"`
	Points          int      `json:"points"`
	SpiritualReward string   `json:"spiritualReward,omitempty"`
}

// CompletionAck is the one-shot acknowledgment returned when a task is
// completed for the first time in a session.
type CompletionAck struct {
	TaskID        int `json:"taskId"`
	PointsAwarded int `json:"pointsAwarded"`
}
