package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pureHeartAPI/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps the engine's error taxonomy onto HTTP status
// codes. Every engine failure is recoverable, so the payload always carries
// the message for the client to surface with a retry affordance.
func respondWithServiceError(w http.ResponseWriter, err error) {
	if kind, ok := apperr.KindOf(err); ok {
		code := http.StatusInternalServerError
		switch kind {
		case apperr.KindValidation:
			code = http.StatusBadRequest
		case apperr.KindNotFound:
			code = http.StatusNotFound
		case apperr.KindConflict:
			code = http.StatusConflict
		case apperr.KindState:
			code = http.StatusUnprocessableEntity
		}
		respondWithError(w, code, err.Error())
		return
	}

	log.Printf("Unexpected service error: %v", err)
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
