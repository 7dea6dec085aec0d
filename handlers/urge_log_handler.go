package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/middleware"
	"pureHeartAPI/services"
)

type UrgeLogHandler struct {
	streakService  *services.StreakService
	urgeLogService *services.UrgeLogService
}

func NewUrgeLogHandler(streakService *services.StreakService, urgeLogService *services.UrgeLogService) *UrgeLogHandler {
	return &UrgeLogHandler{
		streakService:  streakService,
		urgeLogService: urgeLogService,
	}
}

// CreateUrgeLog records an urge event. The response carries the stored log
// with its derived reward fields, whether the event reset the streak, and
// the updated user.
func (h *UrgeLogHandler) CreateUrgeLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req urgelog.CreateUrgeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.streakService.RecordUrgeEvent(ctx, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	middleware.UrgeLogsTotal.WithLabelValues(string(result.Log.Trigger)).Inc()
	if result.StreakReset {
		middleware.RelapsesTotal.Inc()
	}

	respondWithJSON(w, http.StatusCreated, result)
}

// ListUserLogs returns a user's urge logs. Query parameters narrow the
// window: ?days=N for the recent N days, ?week=2006-01-02 for the week
// containing that date.
func (h *UrgeLogHandler) ListUserLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if days, ok := queryInt(r, "days"); ok {
		logs, err := h.urgeLogService.Recent(ctx, userID, days)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, logs)
		return
	}

	if week := r.URL.Query().Get("week"); week != "" {
		anchor, err := time.Parse("2006-01-02", week)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid week date, expected YYYY-MM-DD")
			return
		}
		logs, err := h.urgeLogService.Weekly(ctx, userID, anchor)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, logs)
		return
	}

	logs, err := h.urgeLogService.ListByUser(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, logs)
}

func (h *UrgeLogHandler) SummarizeUserLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	summary, err := h.urgeLogService.Summarize(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
