package handlers

import (
	"encoding/json"
	"net/http"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
	"minvest/internal/models"
)

type subscribeRequest struct {
	ContractID int64   `json:"contractId"`
	Amount     float64 `json:"amount"`
}

func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	sub, err := h.ledgerService.Subscribe(r.Context(), minerID, req.ContractID, req.Amount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "subscription created", sub)
}

func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	subs, err := h.ledgerService.ListSubscriptions(r.Context(), minerID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "subscriptions", subs)
}

func (h *Handler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	sub, err := h.ledgerService.GetSubscription(r.Context(), callerID, role, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "subscription", sub)
}

type depositRequest struct {
	Amount float64 `json:"amount"`
}

func (h *Handler) RecordDeposit(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// ownership gate before any mutation
	if _, err := h.ledgerService.GetSubscription(r.Context(), callerID, role, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	sub, err := h.ledgerService.RecordDeposit(r.Context(), id, req.Amount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "deposit recorded", sub)
}

func (h *Handler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.GetRole(r.Context())

	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.ledgerService.CancelSubscription(r.Context(), callerID, role, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "subscription cancelled", nil)
}

type mutateRequest struct {
	Field      string   `json:"field,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Earnings   *float64 `json:"earnings,omitempty"`
	ActionType string   `json:"actionType"`
}

// MutateBalance is the unified admin adjustment endpoint. It accepts the
// legacy set/add/subtract and credit/debit action types and maps both
// onto one mutation vocabulary.
func (h *Handler) MutateBalance(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	field := models.BalanceField(req.Field)
	amount := req.Amount
	if amount == nil && req.Earnings != nil {
		amount = req.Earnings
		if field == "" {
			field = models.FieldEarnings
		}
	}
	if field == "" {
		field = models.FieldEarnings
	}
	if amount == nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	var mode models.MutationMode
	switch req.ActionType {
	case "set":
		mode = models.ModeSet
	case "add", "credit", "increase":
		mode = models.ModeIncrease
	case "subtract", "debit", "decrease":
		mode = models.ModeDecrease
	default:
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	sub, err := h.ledgerService.MutateBalance(r.Context(), id, field, mode, *amount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "balance updated", sub)
}

type accrueRequest struct {
	Days int `json:"days"`
}

func (h *Handler) Accrue(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	req := accrueRequest{Days: 1}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, r, apperrors.ErrInvalidRequest)
			return
		}
	}

	sub, err := h.ledgerService.AccrueEarnings(r.Context(), id, req.Days)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "earnings accrued", sub)
}
