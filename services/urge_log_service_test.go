package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/internal/user"
)

func TestSummarize_SeededHistory(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	summary, err := svc.Summarize(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalTransformations)
	assert.Equal(t, 86, summary.TotalPointsEarned)
	assert.Equal(t, 12, summary.TotalSpiritualGrowth)
	assert.Equal(t, 2.5, summary.AverageIntensity)

	// All four triggers appear once; the first in log order wins the tie.
	require.NotNil(t, summary.MostCommonTrigger)
	assert.Equal(t, "stress", *summary.MostCommonTrigger)

	// One log has no coping strategy; empty values never count as a mode.
	require.NotNil(t, summary.MostUsedCoping)
	assert.Equal(t, "dhikr", *summary.MostUsedCoping)
}

func TestSummarize_EmptyHistory(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	u := createUser(t, store, &user.User{DisplayName: "Tariq"})

	summary, err := svc.Summarize(context.Background(), u.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalTransformations)
	assert.Equal(t, 0.0, summary.AverageIntensity)
	assert.Nil(t, summary.MostCommonTrigger)
	assert.Nil(t, summary.MostUsedCoping)
}

func TestSummarize_MajorityTriggerWins(t *testing.T) {
	store := newSeededStore(t)
	streaks := NewStreakService(store.Users(), store.UrgeLogs(), NewEntityLocks())
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	u := createUser(t, store, &user.User{DisplayName: "Tariq"})

	for _, trigger := range []urgelog.Trigger{
		urgelog.TriggerBoredom, urgelog.TriggerStress, urgelog.TriggerStress,
	} {
		_, err := streaks.RecordUrgeEvent(context.Background(), &urgelog.CreateUrgeLogRequest{
			UserID:    u.ID,
			Intensity: 2,
			Trigger:   trigger,
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summarize(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.MostCommonTrigger)
	assert.Equal(t, "stress", *summary.MostCommonTrigger)
}

func TestSummarize_UnknownUser(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	_, err := svc.Summarize(context.Background(), 9999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateThenRead_DerivedFieldsAreStable(t *testing.T) {
	store := newSeededStore(t)
	streaks := NewStreakService(store.Users(), store.UrgeLogs(), NewEntityLocks())
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	u := createUser(t, store, &user.User{DisplayName: "Tariq"})

	result, err := streaks.RecordUrgeEvent(context.Background(), &urgelog.CreateUrgeLogRequest{
		UserID:         u.ID,
		Intensity:      3,
		Trigger:        urgelog.TriggerLoneliness,
		CopingStrategy: "dhikr",
	})
	require.NoError(t, err)

	stored, err := svc.GetLog(context.Background(), result.Log.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Log.TransformationPoints, stored.TransformationPoints)
	assert.Equal(t, result.Log.SpiritualGrowth, stored.SpiritualGrowth)
	assert.Equal(t, 20, stored.TransformationPoints)
}

func TestListByUser_SortedByTimestamp(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	logs, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, logs, 4)
	for i := 1; i < len(logs); i++ {
		assert.False(t, logs[i].Timestamp.Before(logs[i-1].Timestamp))
	}
}

func TestRecent_FiltersByCutoff(t *testing.T) {
	store := newSeededStore(t)
	streaks := NewStreakService(store.Users(), store.UrgeLogs(), NewEntityLocks())
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	u := createUser(t, store, &user.User{DisplayName: "Tariq"})

	old := time.Now().AddDate(0, 0, -30)
	fresh := time.Now().AddDate(0, 0, -2)
	for _, ts := range []time.Time{old, fresh} {
		stamp := ts
		_, err := streaks.RecordUrgeEvent(context.Background(), &urgelog.CreateUrgeLogRequest{
			UserID:    u.ID,
			Intensity: 2,
			Trigger:   urgelog.TriggerHabit,
			Timestamp: &stamp,
		})
		require.NoError(t, err)
	}

	recent, err := svc.Recent(context.Background(), u.ID, 7)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.WithinDuration(t, fresh, recent[0].Timestamp, time.Second)
}

func TestWeekly_BoundsAreMondayToSunday(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUrgeLogService(store.UrgeLogs(), store.Users())

	// Seed logs 1 and 2 fall in the week of Monday 2024-02-26; logs 3 and 4
	// land on the Thursday and Friday of that same week.
	anchor := time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC)
	week, err := svc.Weekly(context.Background(), 1, anchor)
	require.NoError(t, err)
	assert.Len(t, week, 4)

	// The following week holds none of user 1's logs.
	nextWeek, err := svc.Weekly(context.Background(), 1, anchor.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, nextWeek)
}
