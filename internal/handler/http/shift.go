package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/retouchhive/office-backend/internal/domain/shift"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type ShiftHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	EnrollOT(w http.ResponseWriter, r *http.Request)
	ListOT(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Assign implements ShiftHandler.
func (h *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req shift.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift assigned", resp)
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.Get(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Remove implements ShiftHandler.
func (h *ShiftHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Remove(r.Context(), chi.URLParam(r, "email")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift assignment removed", nil)
}

// EnrollOT implements ShiftHandler.
func (h *ShiftHandlerImpl) EnrollOT(w http.ResponseWriter, r *http.Request) {
	var req shift.EnrollOTRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.EnrollOT(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Enrolled in OT list", resp)
}

// ListOT implements ShiftHandler.
func (h *ShiftHandlerImpl) ListOT(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.ListOT(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
