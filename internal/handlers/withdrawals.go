package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
	"minvest/internal/models"
)

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	withdrawal, err := h.ledgerService.RequestWithdrawal(r.Context(), minerID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "withdrawal requested", withdrawal)
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawalService.ListForMiner(r.Context(), minerID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.respond(w, http.StatusOK, "withdrawals", withdrawals)
}

func (h *Handler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	withdrawal, err := h.withdrawalService.Cancel(r.Context(), minerID, id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "withdrawal cancelled", withdrawal)
}

type withdrawalStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req withdrawalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	withdrawal, err := h.withdrawalService.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "withdrawal status updated", withdrawal)
}

func (h *Handler) ListAllWithdrawals(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	withdrawals, total, err := h.withdrawalService.ListAll(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondPaged(w, http.StatusOK, "withdrawals", withdrawals, &Pagination{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
