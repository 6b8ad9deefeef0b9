package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/retouchhive/office-backend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	maxRetries = 3
	// bccBatchSize caps recipients per SMTP send so one bad batch
	// does not sink the whole broadcast.
	bccBatchSize = 50
)

// EmailService defines the interface for sending emails
type EmailService interface {
	SendActivation(to, employeeName, activationLink, expiresAt string) error
	// SendNoticeBroadcast delivers a notice to all recipients via BCC.
	// Recipients are chunked and failed chunks are logged, not returned.
	SendNoticeBroadcast(recipients []string, title, body string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type activationEmailData struct {
	EmployeeName   string
	ActivationLink string
	ExpiresAt      string
}

// SendActivation sends the account activation email to a newly
// registered employee.
func (s *emailServiceImpl) SendActivation(to, employeeName, activationLink, expiresAt string) error {
	data := activationEmailData{
		EmployeeName:   employeeName,
		ActivationLink: activationLink,
		ExpiresAt:      expiresAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "activation.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML([]string{to}, to, "Activate Your Retouch Hive Account", body.String())
}

type noticeEmailData struct {
	Title string
	Body  string
}

// SendNoticeBroadcast sends the notice to every recipient in BCC
// batches. A failed batch is logged and skipped so the remaining
// batches still go out.
func (s *emailServiceImpl) SendNoticeBroadcast(recipients []string, title, body string) error {
	data := noticeEmailData{Title: title, Body: body}

	var html bytes.Buffer
	if err := s.templates.ExecuteTemplate(&html, "notice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	for _, batch := range ChunkRecipients(recipients, bccBatchSize) {
		if err := s.sendHTML(batch, s.cfg.From, title, html.String()); err != nil {
			slog.Error("Failed to send notice batch",
				"title", title,
				"batch_size", len(batch),
				"error", err,
			)
		}
	}

	return nil
}

// ChunkRecipients splits a recipient list into batches of at most
// size. A nil or empty list yields no batches.
func ChunkRecipients(recipients []string, size int) [][]string {
	if size <= 0 || len(recipients) == 0 {
		return nil
	}

	batches := make([][]string, 0, (len(recipients)+size-1)/size)
	for start := 0; start < len(recipients); start += size {
		end := start + size
		if end > len(recipients) {
			end = len(recipients)
		}
		batches = append(batches, recipients[start:end])
	}
	return batches
}

func (s *emailServiceImpl) sendHTML(to []string, headerTo, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", headerTo, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", headerTo)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", headerTo, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", headerTo,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
