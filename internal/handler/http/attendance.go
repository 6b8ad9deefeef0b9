package http

import (
	"net/http"
	"strconv"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/handler/http/middleware"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	StartOT(w http.ResponseWriter, r *http.Request)
	StopOT(w http.ResponseWriter, r *http.Request)
	ListSnapshots(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Punches always act on the caller's own identity from the token; the
// body carries no email so nobody can punch for a colleague.
func punchRequest(r *http.Request) attendance.PunchRequest {
	return attendance.PunchRequest{Email: middleware.ClaimedEmail(r)}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckIn(r.Context(), punchRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked in", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckOut(r.Context(), punchRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", resp)
}

// StartOT implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StartOT(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.StartOT(r.Context(), punchRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime started", resp)
}

// StopOT implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StopOT(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.StopOT(r.Context(), punchRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Overtime stopped", resp)
}

// ListSnapshots implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := attendance.SnapshotFilter{}
	if v := q.Get("email"); v != "" {
		filter.Email = &v
	}
	if v := q.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	resp, err := h.attendanceService.ListSnapshots(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
