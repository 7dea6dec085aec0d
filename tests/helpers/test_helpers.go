package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/handlers"
	"pureHeartAPI/internal/repository/memory"
	"pureHeartAPI/services"
)

// NewTestRouter wires every handler against a fresh zero-latency seeded
// in-memory store and returns the router with the same route table main
// registers.
func NewTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	store := memory.NewStore(0)
	require.NoError(t, store.Seed())

	locks := services.NewEntityLocks()
	userService := services.NewUserService(store.Users(), store.Partnerships(), locks)
	streakService := services.NewStreakService(store.Users(), store.UrgeLogs(), locks)
	urgeLogService := services.NewUrgeLogService(store.UrgeLogs(), store.Users())
	taskService := services.NewTaskService(store.Tasks(), store.Users(), locks)
	partnershipService := services.NewPartnershipService(store.Partnerships(), store.Users(), locks)
	dailyContentService := services.NewDailyContentService(store.DailyContent())

	userHandler := handlers.NewUserHandler(userService, streakService)
	urgeLogHandler := handlers.NewUrgeLogHandler(streakService, urgeLogService)
	taskHandler := handlers.NewTaskHandler(taskService)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService)
	progressHandler := handlers.NewProgressHandler(userService, urgeLogService)
	dailyContentHandler := handlers.NewDailyContentHandler(dailyContentService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	api.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}", userHandler.GetUser).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/points", userHandler.AddPoints).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/streak/advance", userHandler.AdvanceDailyStreak).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/streak/reset", userHandler.ResetStreak).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/available-partners", userHandler.GetAvailablePartners).Methods("GET")

	api.HandleFunc("/urge-logs", urgeLogHandler.CreateUrgeLog).Methods("POST")
	api.HandleFunc("/users/{id:[0-9]+}/urge-logs", urgeLogHandler.ListUserLogs).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/urge-logs/summary", urgeLogHandler.SummarizeUserLogs).Methods("GET")

	api.HandleFunc("/users/{id:[0-9]+}/progress", progressHandler.GetProgress).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/milestones", progressHandler.GetMilestones).Methods("GET")

	api.HandleFunc("/tasks", taskHandler.ListTasks).Methods("GET")
	api.HandleFunc("/tasks/{id:[0-9]+}/complete", taskHandler.CompleteTask).Methods("POST")

	api.HandleFunc("/partnerships/current", partnershipHandler.GetCurrent).Methods("GET")
	api.HandleFunc("/partnerships/request", partnershipHandler.RequestPartnership).Methods("POST")
	api.HandleFunc("/partnerships/{id:[0-9]+}/accept", partnershipHandler.AcceptPartnership).Methods("POST")
	api.HandleFunc("/partnerships/check-in", partnershipHandler.CheckIn).Methods("POST")
	api.HandleFunc("/partnerships/end", partnershipHandler.EndPartnership).Methods("POST")
	api.HandleFunc("/partnerships/messages", partnershipHandler.SendMessage).Methods("POST")
	api.HandleFunc("/partnerships/messages", partnershipHandler.GetMessages).Methods("GET")

	api.HandleFunc("/daily-content/today", dailyContentHandler.GetTodayContent).Methods("GET")
	api.HandleFunc("/daily-content/random", dailyContentHandler.GetRandomContent).Methods("GET")
	api.HandleFunc("/daily-content/{id:[0-9]+}", dailyContentHandler.GetContent).Methods("GET")
	api.HandleFunc("/daily-content", dailyContentHandler.ListContent).Methods("GET")

	return r
}

// DoJSON sends a JSON request through the router and decodes the response
// body into out when out is non-nil. It returns the recorder for status and
// header assertions.
func DoJSON(t *testing.T, r *mux.Router, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if out != nil && rr.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
	}
	return rr
}
