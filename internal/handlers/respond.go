package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"minvest/internal/apperrors"
	"minvest/internal/logger"
	"go.uber.org/zap"
)

// Pagination is the page block attached to list responses.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	Stack      string      `json:"stack,omitempty"`
}

func (h *Handler) respond(w http.ResponseWriter, status int, message string, data interface{}) {
	h.respondPaged(w, status, message, data, nil)
}

func (h *Handler) respondPaged(w http.ResponseWriter, status int, message string, data interface{}, p *Pagination) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
	}); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

// respondError maps a domain error onto the HTTP taxonomy. Server errors
// are logged with full context; client errors carry only the sanitized
// message, with stack detail included outside production.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()

	env := envelope{Success: false, Message: message}
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err))
		env.Message = "internal server error"
		if !h.production {
			env.Details = message
			env.Stack = string(debug.Stack())
		}
	} else {
		logger.Log.Warn("request rejected",
			zap.String("uri", r.RequestURI),
			zap.Int("status", status),
			zap.String("reason", message))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(env); encErr != nil {
		logger.Log.Error("failed to encode error response", zap.Error(encErr))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidPeriodReturn),
		errors.Is(err, apperrors.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrInvalidAuthHeader):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrServerNotFound),
		errors.Is(err, apperrors.ErrContractNotFound),
		errors.Is(err, apperrors.ErrSubscriptionNotFound),
		errors.Is(err, apperrors.ErrWithdrawalNotFound),
		errors.Is(err, apperrors.ErrBankNotFound),
		errors.Is(err, apperrors.ErrWalletNotFound),
		errors.Is(err, apperrors.ErrKYCNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUserAlreadyExists),
		errors.Is(err, apperrors.ErrServerExists),
		errors.Is(err, apperrors.ErrBankExists),
		errors.Is(err, apperrors.ErrWalletExists),
		errors.Is(err, apperrors.ErrKYCAlreadySubmitted),
		errors.Is(err, apperrors.ErrInsufficientBalance):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
