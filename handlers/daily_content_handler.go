package handlers

import (
	"context"
	"net/http"
	"time"

	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/services"
)

type DailyContentHandler struct {
	contentService *services.DailyContentService
}

func NewDailyContentHandler(contentService *services.DailyContentService) *DailyContentHandler {
	return &DailyContentHandler{contentService: contentService}
}

func (h *DailyContentHandler) GetTodayContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.contentService.Today(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *DailyContentHandler) GetRandomContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := h.contentService.Random(ctx)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *DailyContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid content id")
		return
	}

	c, err := h.contentService.Get(ctx, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, c)
}

func (h *DailyContentHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	contentType := r.URL.Query().Get("type")
	if contentType == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'type' is required")
		return
	}

	content, err := h.contentService.ByType(ctx, dailycontent.ContentType(contentType))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, content)
}
