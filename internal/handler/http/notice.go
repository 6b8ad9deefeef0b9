package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/retouchhive/office-backend/internal/domain/notice"
	"github.com/retouchhive/office-backend/internal/handler/http/middleware"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

// maxNoticeUploadBytes bounds the multipart form held in memory.
const maxNoticeUploadBytes = 10 << 20

type NoticeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListNotifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
}

type NoticeHandlerImpl struct {
	noticeService notice.Service
}

func NewNoticeHandler(noticeService notice.Service) NoticeHandler {
	return &NoticeHandlerImpl{noticeService: noticeService}
}

// Create implements NoticeHandler. The body is multipart so the notice
// can carry an optional PDF attachment alongside its fields.
func (h *NoticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxNoticeUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := notice.CreateRequest{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		NotifyByEmail: r.FormValue("notify_by_email") == "true",
	}
	if email := middleware.ClaimedEmail(r); email != "" {
		req.CreatedBy = &email
	}

	file, header, err := r.FormFile("attachment")
	switch err {
	case nil:
		defer file.Close()
		req.File = file
		req.FileHeader = header
	case http.ErrMissingFile:
		// attachment is optional
	default:
		response.BadRequest(w, "Invalid attachment", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.noticeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create notice error", "title", req.Title, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notice published", resp)
}

// List implements NoticeHandler.
func (h *NoticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.noticeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListNotifications implements NoticeHandler. Notifications are always
// the caller's own.
func (h *NoticeHandlerImpl) ListNotifications(w http.ResponseWriter, r *http.Request) {
	resp, err := h.noticeService.ListNotifications(r.Context(), middleware.ClaimedEmail(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MarkRead implements NoticeHandler.
func (h *NoticeHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationID")

	if err := h.noticeService.MarkRead(r.Context(), id, middleware.ClaimedEmail(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
