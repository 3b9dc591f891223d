package handlers

import (
	"encoding/json"
	"net/http"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
)

type kycRequest struct {
	DocumentType string `json:"documentType"`
	DocumentRef  string `json:"documentRef"`
}

func (h *Handler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req kycRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	rec, err := h.kycService.Submit(r.Context(), minerID, req.DocumentType, req.DocumentRef)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "kyc submitted", rec)
}

func (h *Handler) GetKYC(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, err := h.kycService.Get(r.Context(), minerID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "kyc record", rec)
}

type kycReviewRequest struct {
	Approve bool `json:"approve"`
}

func (h *Handler) ReviewKYC(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req kycReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	rec, err := h.kycService.Review(r.Context(), id, req.Approve)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "kyc reviewed", rec)
}
