package notice

import (
	"mime/multipart"

	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

type CreateRequest struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	NotifyByEmail bool                  `json:"notify_by_email"`
	CreatedBy     *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoticeResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	NotifyByEmail bool    `json:"notify_by_email"`
	CreatedAt     string  `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
