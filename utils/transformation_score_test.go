package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreUrgeLog_FullDetail(t *testing.T) {
	points, growth := ScoreUrgeLog(UrgeScoreInput{
		CopingStrategy: "prayer",
		EmotionalState: "anxious",
		Notes:          "a longer reflection here",
	})

	// 10 base + 15 prayer + 3 emotional state + 2 detailed notes
	assert.Equal(t, 30, points)
	assert.Equal(t, 5, growth)
}

func TestScoreUrgeLog_Empty(t *testing.T) {
	points, growth := ScoreUrgeLog(UrgeScoreInput{})

	assert.Equal(t, BaseLogPoints, points)
	assert.Equal(t, 1, growth)
}

func TestScoreUrgeLog_StrategyBonuses(t *testing.T) {
	tests := []struct {
		strategy   string
		wantPoints int
		wantGrowth int
	}{
		{"dhikr", 20, 5},
		{"prayer", 25, 5},
		{"recitation", 22, 5},
		{"exercise", 18, 1},
		{"cold_shower", 16, 1},
		{"call_friend", 15, 1},
		{"doomscrolling", 10, 1},
		{"", 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			points, growth := ScoreUrgeLog(UrgeScoreInput{CopingStrategy: tt.strategy})
			assert.Equal(t, tt.wantPoints, points)
			assert.Equal(t, tt.wantGrowth, growth)
		})
	}
}

func TestScoreUrgeLog_ShortNotesNoBonus(t *testing.T) {
	// Exactly ten characters does not qualify as detailed journaling.
	points, _ := ScoreUrgeLog(UrgeScoreInput{Notes: "1234567890"})
	assert.Equal(t, BaseLogPoints, points)

	points, _ = ScoreUrgeLog(UrgeScoreInput{Notes: "12345678901"})
	assert.Equal(t, BaseLogPoints+DetailedNotesBonus, points)
}
