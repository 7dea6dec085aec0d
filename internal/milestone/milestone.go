package milestone

// Milestone is a fixed streak threshold with a display title.
type Milestone struct {
	Days  int    `json:"days"`
	Title string `json:"title"`
}

// Ladder is the ordered milestone ladder. Order matters: achieved milestones
// are reported ascending and "next" is the smallest unachieved threshold.
var Ladder = []Milestone{
	{Days: 7, Title: "First Week"},
	{Days: 30, Title: "First Month"},
	{Days: 90, Title: "90 Days Strong"},
	{Days: 180, Title: "Half Year"},
	{Days: 365, Title: "One Full Year"},
}

type Next struct {
	Title         string  `json:"title"`
	Days          int     `json:"days"`
	DaysRemaining int     `json:"daysRemaining"`
	ProgressRatio float64 `json:"progressRatio"`
}

type Evaluation struct {
	Achieved []Milestone `json:"achieved"`
	Next     *Next       `json:"next"`
}

// Evaluate projects a streak value onto the ladder. Pure and deterministic;
// a milestone is achieved iff currentStreak >= its threshold. When the whole
// ladder is achieved Next is nil.
func Evaluate(currentStreak int) Evaluation {
	eval := Evaluation{Achieved: []Milestone{}}
	for _, m := range Ladder {
		if currentStreak >= m.Days {
			eval.Achieved = append(eval.Achieved, m)
			continue
		}
		ratio := float64(currentStreak) / float64(m.Days)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		eval.Next = &Next{
			Title:         m.Title,
			Days:          m.Days,
			DaysRemaining: m.Days - currentStreak,
			ProgressRatio: ratio,
		}
		break
	}
	return eval
}
