package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/retouchhive/office-backend/internal/domain/auth"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		slog.Error("Login error", "email", req.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Activate implements AuthHandler.
func (h *AuthHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	var req auth.ActivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Activate(r.Context(), req)
	if err != nil {
		slog.Error("Activate error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account activated", resp)
}
