package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pureHeartAPI/middleware"
	"pureHeartAPI/services"
)

type PartnershipHandler struct {
	partnershipService *services.PartnershipService
}

func NewPartnershipHandler(partnershipService *services.PartnershipService) *PartnershipHandler {
	return &PartnershipHandler{partnershipService: partnershipService}
}

// GetCurrent returns the user's pending or active partnership, or a JSON
// null when the user has none.
func (h *PartnershipHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := queryInt(r, "userId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'userId' is required")
		return
	}

	p, err := h.partnershipService.GetCurrent(ctx, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

type partnershipRequest struct {
	UserID    int `json:"userId" validate:"required"`
	PartnerID int `json:"partnerId" validate:"required"`
}

func (h *PartnershipHandler) RequestPartnership(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req partnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 || req.PartnerID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid request body, userId and partnerId are required")
		return
	}

	p, err := h.partnershipService.Request(ctx, req.UserID, req.PartnerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, p)
}

func (h *PartnershipHandler) AcceptPartnership(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, ok := pathID(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid partnership id")
		return
	}

	p, err := h.partnershipService.Accept(ctx, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

func (h *PartnershipHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req partnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 || req.PartnerID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid request body, userId and partnerId are required")
		return
	}

	p, err := h.partnershipService.CheckIn(ctx, req.UserID, req.PartnerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	middleware.PartnerCheckInsTotal.Inc()
	respondWithJSON(w, http.StatusOK, p)
}

type endPartnershipRequest struct {
	UserID int `json:"userId" validate:"required"`
}

func (h *PartnershipHandler) EndPartnership(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req endPartnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid request body, userId is required")
		return
	}

	p, err := h.partnershipService.End(ctx, req.UserID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

type sendMessageRequest struct {
	FromUserID int    `json:"fromUserId" validate:"required"`
	ToUserID   int    `json:"toUserId" validate:"required"`
	Body       string `json:"body" validate:"required"`
}

func (h *PartnershipHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FromUserID <= 0 || req.ToUserID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid request body, fromUserId and toUserId are required")
		return
	}

	m, err := h.partnershipService.SendMessage(ctx, req.FromUserID, req.ToUserID, req.Body)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, m)
}

func (h *PartnershipHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := queryInt(r, "userId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'userId' is required")
		return
	}
	partnerID, ok := queryInt(r, "partnerId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'partnerId' is required")
		return
	}

	messages, err := h.partnershipService.Messages(ctx, userID, partnerID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, messages)
}
