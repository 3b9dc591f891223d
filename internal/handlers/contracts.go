package handlers

import (
	"encoding/json"
	"net/http"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
	"minvest/internal/models"
)

type contractRequest struct {
	ServerID     int64    `json:"serverId"`
	PeriodReturn *float64 `json:"periodReturn"`
	Period       string   `json:"period"`
	Active       *bool    `json:"active,omitempty"`
}

func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PeriodReturn == nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	contract := &models.MiningContract{
		ServerID:     req.ServerID,
		PeriodReturn: *req.PeriodReturn,
		Period:       req.Period,
		Active:       true,
	}
	if req.Active != nil {
		contract.Active = *req.Active
	}

	if err := h.catalogService.CreateContract(r.Context(), contract); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "mining contract created", contract)
}

func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	existing, err := h.catalogService.GetContract(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if req.ServerID != 0 {
		existing.ServerID = req.ServerID
	}
	if req.PeriodReturn != nil {
		existing.PeriodReturn = *req.PeriodReturn
	}
	if req.Period != "" {
		existing.Period = req.Period
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := h.catalogService.UpdateContract(r.Context(), existing); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "mining contract updated", existing)
}

func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if role, ok := middleware.GetRole(r.Context()); ok && role == models.RoleAdmin {
		activeOnly = false
	}

	contracts, err := h.catalogService.ListContracts(r.Context(), activeOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "mining contracts", contracts)
}
