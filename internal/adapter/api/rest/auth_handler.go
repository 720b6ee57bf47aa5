package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-edustream-app/internal/core/domain/accounts"
	"go-edustream-app/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register handles POST /api/users/register.
// Validation failures return a field-keyed error map before any store access.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in accounts.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if fieldErrors := in.Validate(); len(fieldErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, fieldErrors)
		return
	}

	if err := h.service.Register(r.Context(), in); err != nil {
		if errors.Is(err, accounts.ErrEmailTaken) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"email": "Email already exists"})
			return
		}
		h.logger.Error("registration failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server Error"})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: msgUserCreated})
}

// Login handles POST /api/users/login. Unknown emails and wrong passwords
// map to distinct statuses; clients key error hints off the response shape.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in accounts.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if fieldErrors := in.Validate(); len(fieldErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, fieldErrors)
		return
	}

	token, err := h.service.Login(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrNotFound):
			respondJSON(w, http.StatusNotFound, map[string]string{"emailnotfound": "Email not found"})
		case errors.Is(err, accounts.ErrInvalidCredentials):
			respondJSON(w, http.StatusBadRequest, map[string]string{"passwordincorrect": "Password incorrect"})
		default:
			h.logger.Error("login failed", "error", err)
			respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server Error"})
		}
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{Success: true, Token: token})
}

// ListDisabled handles GET /api/users. Listing users is not offered.
func (h *AuthHandler) ListDisabled(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusForbidden, messageResponse{Message: "Forbidden"})
}
