package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/handler/http/middleware"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	SetSalaryPin(w http.ResponseWriter, r *http.Request)
	VerifySalaryPin(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Register implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req employee.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register error", "email", req.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered, activation email sent", resp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	resp, err := h.employeeService.Get(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Me implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.Get(r.Context(), middleware.ClaimedEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *employee.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := employee.Status(s)
		status = &st
	}

	resp, err := h.employeeService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Email = chi.URLParam(r, "email")

	resp, err := h.employeeService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated", resp)
}

// SetStatus implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req employee.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Email = chi.URLParam(r, "email")

	if err := h.employeeService.SetStatus(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Status updated", nil)
}

// SetSalaryPin implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SetSalaryPin(w http.ResponseWriter, r *http.Request) {
	var req employee.SetSalaryPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Email = middleware.ClaimedEmail(r)

	if err := h.employeeService.SetSalaryPin(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary PIN set", nil)
}

// VerifySalaryPin implements EmployeeHandler.
func (h *EmployeeHandlerImpl) VerifySalaryPin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.VerifySalaryPin(r.Context(), middleware.ClaimedEmail(r), req.Pin); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "PIN verified", nil)
}
