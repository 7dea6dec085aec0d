package integration

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/partnership"
	"pureHeartAPI/internal/task"
	modelUser "pureHeartAPI/internal/user"
	"pureHeartAPI/tests/helpers"
)

type urgeResult struct {
	Log struct {
		ID                   int    `json:"id"`
		Intensity            int    `json:"intensity"`
		Trigger              string `json:"trigger"`
		TransformationPoints int    `json:"transformationPoints"`
		SpiritualGrowth      int    `json:"spiritualGrowth"`
	} `json:"log"`
	StreakReset bool           `json:"streakReset"`
	User        modelUser.User `json:"user"`
}

// TestRecoveryJourneyFlow walks one user through the whole loop: sign up,
// build a streak, survive an urge, relapse, complete a replacement task and
// read the progress page.
func TestRecoveryJourneyFlow(t *testing.T) {
	router := helpers.NewTestRouter(t)

	// Step 1: a new user joins.
	t.Log("Step 1: Create user")
	var created modelUser.User
	rr := helpers.DoJSON(t, router, http.MethodPost, "/api/v1/users",
		map[string]any{"displayName": "Tariq", "triggers": []string{"stress"}}, &created)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, created.Level)
	assert.Equal(t, 0, created.CurrentStreak)

	userPath := "/api/v1/users/" + strconv.Itoa(created.ID)

	// Step 2: the first clean day. A second advance the same day is a no-op.
	t.Log("Step 2: Advance daily streak")
	var afterAdvance modelUser.User
	rr = helpers.DoJSON(t, router, http.MethodPost, userPath+"/streak/advance", nil, &afterAdvance)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, afterAdvance.CurrentStreak)

	rr = helpers.DoJSON(t, router, http.MethodPost, userPath+"/streak/advance", nil, &afterAdvance)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, afterAdvance.CurrentStreak)
	assert.Equal(t, 1, afterAdvance.TotalCleanDays)

	// Step 3: an urge arrives and is handled with prayer.
	t.Log("Step 3: Log a handled urge")
	var handled urgeResult
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/urge-logs", map[string]any{
		"userId":         created.ID,
		"intensity":      2,
		"trigger":        "stress",
		"copingStrategy": "prayer",
	}, &handled)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.False(t, handled.StreakReset)
	assert.Equal(t, 25, handled.Log.TransformationPoints)
	assert.Equal(t, 5, handled.Log.SpiritualGrowth)
	assert.Equal(t, 1, handled.User.CurrentStreak)
	assert.Equal(t, 25, handled.User.Points)

	// Step 4: a relapse resets the current streak but nothing else.
	t.Log("Step 4: Log a relapse")
	var relapse urgeResult
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/urge-logs", map[string]any{
		"userId":    created.ID,
		"intensity": 5,
		"trigger":   "loneliness",
	}, &relapse)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, relapse.StreakReset)
	assert.Equal(t, 0, relapse.User.CurrentStreak)
	assert.Equal(t, 1, relapse.User.BestStreak)
	assert.Equal(t, 1, relapse.User.TotalCleanDays)

	// Step 5: a replacement task earns its points exactly once.
	t.Log("Step 5: Complete a task")
	var ack task.CompletionAck
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/tasks/3/complete",
		map[string]any{"userId": created.ID}, &ack)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 10, ack.PointsAwarded)

	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/tasks/3/complete",
		map[string]any{"userId": created.ID}, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Step 6: the progress page reflects everything above.
	t.Log("Step 6: Read progress")
	var progress struct {
		CurrentStreak  int `json:"currentStreak"`
		BestStreak     int `json:"bestStreak"`
		TotalCleanDays int `json:"totalCleanDays"`
		Summary        struct {
			TotalTransformations int     `json:"totalTransformations"`
			TotalPointsEarned    int     `json:"totalPointsEarned"`
			AverageIntensity     float64 `json:"averageIntensity"`
		} `json:"summary"`
	}
	rr = helpers.DoJSON(t, router, http.MethodGet, userPath+"/progress", nil, &progress)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 0, progress.CurrentStreak)
	assert.Equal(t, 1, progress.BestStreak)
	assert.Equal(t, 2, progress.Summary.TotalTransformations)
	assert.Equal(t, 35, progress.Summary.TotalPointsEarned)
	assert.Equal(t, 3.5, progress.Summary.AverageIntensity)
}

// TestPartnershipFlow covers the request, accept, check-in, message and end
// cycle over HTTP.
func TestPartnershipFlow(t *testing.T) {
	router := helpers.NewTestRouter(t)

	// Seed users 4 and 5 are unpartnered.
	var p partnership.Partnership
	rr := helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/request",
		map[string]any{"userId": 4, "partnerId": 5}, &p)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, partnership.StatusPending, p.Status)

	// Neither member shows up as available any more.
	var available []modelUser.User
	rr = helpers.DoJSON(t, router, http.MethodGet, "/api/v1/users/1/available-partners", nil, &available)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, u := range available {
		assert.NotContains(t, []int{1, 4, 5}, u.ID)
	}

	// A second request for a busy member conflicts.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/request",
		map[string]any{"userId": 6, "partnerId": 5}, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Check-in before acceptance is an invalid state.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/check-in",
		map[string]any{"userId": 4, "partnerId": 5}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/"+strconv.Itoa(p.ID)+"/accept", nil, &p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, partnership.StatusActive, p.Status)

	// First check-in of the day counts, the repeat does not.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/check-in",
		map[string]any{"userId": 4, "partnerId": 5}, &p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, p.SharedStreak)

	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/check-in",
		map[string]any{"userId": 5, "partnerId": 4}, &p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, p.SharedStreak)

	// Messages flow both ways.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/messages",
		map[string]any{"fromUserId": 4, "toUserId": 5, "body": "checked in, stay strong"}, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var messages []partnership.Message
	rr = helpers.DoJSON(t, router, http.MethodGet, "/api/v1/partnerships/messages?userId=5&partnerId=4", nil, &messages)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, messages, 1)
	assert.Equal(t, "checked in, stay strong", messages[0].Body)

	// Ending frees both members.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/partnerships/end",
		map[string]any{"userId": 5}, &p)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, partnership.StatusEnded, p.Status)

	rr = helpers.DoJSON(t, router, http.MethodGet, "/api/v1/partnerships/current?userId=4", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "null", rr.Body.String())
}

func TestErrorStatuses(t *testing.T) {
	router := helpers.NewTestRouter(t)

	// Unknown user maps to 404.
	rr := helpers.DoJSON(t, router, http.MethodGet, "/api/v1/users/9999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Out-of-range intensity maps to 400.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/urge-logs",
		map[string]any{"userId": 1, "intensity": 9, "trigger": "stress"}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Negative points map to 400.
	rr = helpers.DoJSON(t, router, http.MethodPost, "/api/v1/users/1/points",
		map[string]any{"amount": -10}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
