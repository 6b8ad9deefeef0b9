package notice

import "errors"

var (
	ErrNoticeNotFound       = errors.New("notice not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAttachmentNotPDF     = errors.New("notice attachments must be PDF files")
)
