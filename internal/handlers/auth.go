package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"minvest/internal/apperrors"
	"github.com/golang-jwt/jwt/v5"
)

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if err := h.userService.Register(r.Context(), req.Login, req.Password); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.issueToken(w, r, req.Login, http.StatusCreated, "account created")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.respondError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	if err := h.userService.Authenticate(r.Context(), req.Login, req.Password); err != nil {
		h.respondError(w, r, apperrors.ErrInvalidCredentials)
		return
	}

	h.issueToken(w, r, req.Login, http.StatusOK, "logged in")
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, login string, status int, message string) {
	user, err := h.userService.GetUserByLogin(r.Context(), login)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.secretKey))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	h.respond(w, status, message, authResponse{Token: tokenString})
}

