package utils

// Coping strategies and their transformation-point bonuses. Logging at all is
// worth the base amount; constructive coping earns more, and specifically
// spiritual strategies carry the higher spiritual-growth weight.
const (
	BaseLogPoints        = 10
	EmotionalStateBonus  = 3
	DetailedNotesBonus   = 2
	detailedNotesMinimum = 10
)

var copingBonuses = map[string]int{
	"dhikr":       10,
	"prayer":      15,
	"recitation":  12,
	"exercise":    8,
	"cold_shower": 6,
	"call_friend": 5,
}

var spiritualStrategies = map[string]bool{
	"dhikr":      true,
	"prayer":     true,
	"recitation": true,
}

type UrgeScoreInput struct {
	CopingStrategy string
	EmotionalState string
	Notes          string
}

// ScoreUrgeLog derives the reward fields for an urge log. Pure; unrecognized
// strategies add nothing rather than failing.
func ScoreUrgeLog(in UrgeScoreInput) (transformationPoints, spiritualGrowth int) {
	transformationPoints = BaseLogPoints
	transformationPoints += copingBonuses[in.CopingStrategy]
	if in.EmotionalState != "" {
		transformationPoints += EmotionalStateBonus
	}
	if len(in.Notes) > detailedNotesMinimum {
		transformationPoints += DetailedNotesBonus
	}

	spiritualGrowth = 1
	if spiritualStrategies[in.CopingStrategy] {
		spiritualGrowth = 5
	}
	return transformationPoints, spiritualGrowth
}
