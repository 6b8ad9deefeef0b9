package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/retouchhive/office-backend/internal/domain/leave"
	"github.com/retouchhive/office-backend/internal/handler/http/middleware"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	SetBalance(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Apply implements LeaveHandler. The applicant is always the caller.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Email = middleware.ClaimedEmail(r)
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply leave error", "email", req.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave application submitted", resp)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req leave.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ApplicationID = chi.URLParam(r, "applicationID")

	resp, err := h.leaveService.Decide(r.Context(), req)
	if err != nil {
		slog.Error("Decide leave error", "application_id", req.ApplicationID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave application processed", resp)
}

// GetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.GetBalance(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

type setBalanceRequest struct {
	CasualLeave int `json:"casual_leave"`
}

// SetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req setBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.CasualLeave < 0 {
		response.HandleError(w, validator.ValidationErrors{{Field: "casual_leave", Message: "casual_leave cannot be negative"}})
		return
	}

	email := chi.URLParam(r, "email")
	if err := h.leaveService.SetBalance(r.Context(), email, req.CasualLeave); err != nil {
		slog.Error("Set leave balance error", "email", email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance updated", nil)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListMine(r.Context(), middleware.ClaimedEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
