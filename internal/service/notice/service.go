package notice

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/notice"
	"github.com/retouchhive/office-backend/internal/jobs"
	"github.com/retouchhive/office-backend/internal/pkg/storage"
)

type NoticeServiceImpl struct {
	noticeRepository   notice.Repository
	employeeRepository employee.Repository
	fileStorage        storage.FileStorage
	asynqClient        *asynq.Client
}

func NewNoticeService(
	noticeRepository notice.Repository,
	employeeRepository employee.Repository,
	fileStorage storage.FileStorage,
	asynqClient *asynq.Client,
) notice.Service {
	return &NoticeServiceImpl{
		noticeRepository:   noticeRepository,
		employeeRepository: employeeRepository,
		fileStorage:        fileStorage,
		asynqClient:        asynqClient,
	}
}

func toResponse(n notice.Notice) notice.NoticeResponse {
	return notice.NoticeResponse{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		AttachmentURL: n.AttachmentURL,
		NotifyByEmail: n.NotifyByEmail,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements notice.Service. The notice persists even when the
// broadcast enqueue fails; email delivery is best effort.
func (s *NoticeServiceImpl) Create(ctx context.Context, req notice.CreateRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	n := notice.Notice{
		Title:         req.Title,
		Description:   req.Description,
		NotifyByEmail: req.NotifyByEmail,
		CreatedBy:     req.CreatedBy,
	}

	if req.File != nil && req.FileHeader != nil {
		if !strings.EqualFold(filepath.Ext(req.FileHeader.Filename), ".pdf") {
			return notice.NoticeResponse{}, notice.ErrAttachmentNotPDF
		}

		path := fmt.Sprintf("notices/%s_%s", uuid.NewString(), filepath.Base(req.FileHeader.Filename))
		stored, err := s.fileStorage.Upload(ctx, req.File, path, "application/pdf")
		if err != nil {
			return notice.NoticeResponse{}, fmt.Errorf("failed to store attachment: %w", err)
		}
		url, err := s.fileStorage.GetURL(ctx, stored)
		if err != nil {
			return notice.NoticeResponse{}, fmt.Errorf("failed to resolve attachment URL: %w", err)
		}
		n.AttachmentURL = &url
	}

	created, err := s.noticeRepository.InsertNotice(ctx, n)
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	emails, err := s.employeeRepository.ListEmails(ctx)
	if err != nil {
		slog.Error("failed to list employees for notice fan-out", "notice_id", created.ID, "error", err)
		return toResponse(created), nil
	}

	for _, email := range emails {
		if err := s.Notify(ctx, email, created.Title, created.Description); err != nil {
			slog.Error("failed to write notice notification", "email", email, "error", err)
		}
	}

	if created.NotifyByEmail {
		s.enqueueBroadcast(created, emails)
	}

	return toResponse(created), nil
}

func (s *NoticeServiceImpl) enqueueBroadcast(n notice.Notice, recipients []string) {
	task, err := jobs.NewNoticeBroadcastTask(jobs.NoticeBroadcastPayload{
		NoticeID:   n.ID,
		Title:      n.Title,
		Body:       n.Description,
		Recipients: recipients,
	})
	if err != nil {
		slog.Error("failed to build broadcast task", "notice_id", n.ID, "error", err)
		return
	}

	if _, err := s.asynqClient.Enqueue(task); err != nil {
		slog.Error("failed to enqueue notice broadcast", "notice_id", n.ID, "error", err)
	}
}

// List implements notice.Service.
func (s *NoticeServiceImpl) List(ctx context.Context) ([]notice.NoticeResponse, error) {
	notices, err := s.noticeRepository.ListNotices(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, toResponse(n))
	}
	return responses, nil
}

// Notify implements notice.Service.
func (s *NoticeServiceImpl) Notify(ctx context.Context, recipientEmail, title, message string) error {
	return s.noticeRepository.InsertNotification(ctx, notice.Notification{
		RecipientEmail: recipientEmail,
		Title:          title,
		Message:        message,
	})
}

// ListNotifications implements notice.Service.
func (s *NoticeServiceImpl) ListNotifications(ctx context.Context, recipientEmail string) ([]notice.NotificationResponse, error) {
	notifications, err := s.noticeRepository.ListNotifications(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}

	responses := make([]notice.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notice.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// MarkRead implements notice.Service.
func (s *NoticeServiceImpl) MarkRead(ctx context.Context, id string, recipientEmail string) error {
	return s.noticeRepository.MarkRead(ctx, id, recipientEmail)
}
