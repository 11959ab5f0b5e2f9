package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dixitshiv/Roomate-Meal/internal/auth"
)

type AuthHandler struct {
	provider *auth.Provider
	logger   *slog.Logger
}

func NewAuthHandler(provider *auth.Provider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	user, err := h.provider.SignUp(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("signed up", "email", user.Email)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  user,
		"token": h.provider.Token(),
	})
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	user, err := h.provider.SignIn(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": h.provider.Token(),
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.provider.SignOut()
	w.WriteHeader(http.StatusNoContent)
}
