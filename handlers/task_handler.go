package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pureHeartAPI/internal/task"
	"pureHeartAPI/middleware"
	"pureHeartAPI/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns the task catalog. ?category= filters by category,
// ?urgent=true returns the short-duration list (?limit= caps it).
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if category := r.URL.Query().Get("category"); category != "" {
		tasks, err := h.taskService.ListByCategory(ctx, task.Category(category))
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tasks)
		return
	}

	if r.URL.Query().Get("urgent") == "true" {
		limit, _ := queryInt(r, "limit")
		tasks, err := h.taskService.UrgentTasks(ctx, limit)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tasks)
		return
	}

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

type completeTaskRequest struct {
	UserID int `json:"userId" validate:"required"`
}

func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	taskID, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req completeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid request body, userId is required")
		return
	}

	ack, err := h.taskService.Complete(ctx, req.UserID, taskID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	t, err := h.taskService.GetTask(ctx, taskID)
	if err == nil {
		middleware.TasksCompletedTotal.WithLabelValues(string(t.Category)).Inc()
	}

	respondWithJSON(w, http.StatusOK, ack)
}
