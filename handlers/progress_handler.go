package handlers

import (
	"context"
	"net/http"
	"time"

	"pureHeartAPI/internal/milestone"
	"pureHeartAPI/services"
)

type ProgressHandler struct {
	userService    *services.UserService
	urgeLogService *services.UrgeLogService
}

func NewProgressHandler(userService *services.UserService, urgeLogService *services.UrgeLogService) *ProgressHandler {
	return &ProgressHandler{
		userService:    userService,
		urgeLogService: urgeLogService,
	}
}

type progressResponse struct {
	CurrentStreak  int                  `json:"currentStreak"`
	BestStreak     int                  `json:"bestStreak"`
	TotalCleanDays int                  `json:"totalCleanDays"`
	Milestones     milestone.Evaluation `json:"milestones"`
	Summary        any                  `json:"summary"`
}

// GetProgress composes the progress page payload: streak counters, the
// milestone ladder evaluation and the historical summary in one round trip.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	u, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	summary, err := h.urgeLogService.Summarize(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, progressResponse{
		CurrentStreak:  u.CurrentStreak,
		BestStreak:     u.BestStreak,
		TotalCleanDays: u.TotalCleanDays,
		Milestones:     milestone.Evaluate(u.CurrentStreak),
		Summary:        summary,
	})
}

// GetMilestones evaluates the ladder for the user's current streak.
func (h *ProgressHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	u, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, milestone.Evaluate(u.CurrentStreak))
}
