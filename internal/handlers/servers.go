package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
	"minvest/internal/models"
	"github.com/go-chi/chi/v5"
)

func urlID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidRequest
	}
	return id, nil
}

type serverRequest struct {
	Name     string  `json:"name"`
	HashRate float64 `json:"hashRate"`
	Power    float64 `json:"power"`
	Active   *bool   `json:"active,omitempty"`
}

func (h *Handler) CreateServer(w http.ResponseWriter, r *http.Request) {
	var req serverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	server := &models.MiningServer{
		Name:     req.Name,
		HashRate: req.HashRate,
		Power:    req.Power,
		Active:   true,
	}
	if req.Active != nil {
		server.Active = *req.Active
	}

	if err := h.catalogService.CreateServer(r.Context(), server); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "mining server created", server)
}

func (h *Handler) UpdateServer(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	existing, err := h.catalogService.GetServer(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req serverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.HashRate != 0 {
		existing.HashRate = req.HashRate
	}
	if req.Power != 0 {
		existing.Power = req.Power
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := h.catalogService.UpdateServer(r.Context(), existing); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "mining server updated", existing)
}

func (h *Handler) ListServers(w http.ResponseWriter, r *http.Request) {
	// admins see deactivated servers too
	activeOnly := true
	if role, ok := middleware.GetRole(r.Context()); ok && role == models.RoleAdmin {
		activeOnly = false
	}

	servers, err := h.catalogService.ListServers(r.Context(), activeOnly)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "mining servers", servers)
}
