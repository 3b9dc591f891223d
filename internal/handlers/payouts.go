package handlers

import (
	"encoding/json"
	"net/http"

	"minvest/internal/apperrors"
	"minvest/internal/middleware"
	"minvest/internal/models"
)

type bankRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

func (h *Handler) CreateBank(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req bankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	bank := &models.Bank{
		MinerID:       minerID,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Active:        true,
	}

	if err := h.payoutService.CreateBank(r.Context(), bank); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "bank account added", bank)
}

func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	minerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	banks, err := h.payoutService.ListBanks(r.Context(), minerID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "bank accounts", banks)
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) SetBankActive(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req activeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if err := h.payoutService.SetBankActive(r.Context(), id, req.Active); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "bank account updated", nil)
}

type walletRequest struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

func (h *Handler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	wallet := &models.AdminWallet{
		Address:  req.Address,
		Currency: req.Currency,
		Active:   true,
	}

	if err := h.payoutService.CreateWallet(r.Context(), wallet); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusCreated, "wallet added", wallet)
}

func (h *Handler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.payoutService.ListWallets(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "wallets", wallets)
}

func (h *Handler) SetWalletActive(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req activeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if err := h.payoutService.SetWalletActive(r.Context(), id, req.Active); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, "wallet updated", nil)
}
