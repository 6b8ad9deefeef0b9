package postgresql

import (
	"context"

	"github.com/retouchhive/office-backend/internal/domain/notice"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type noticeRepositoryImpl struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.Repository {
	return &noticeRepositoryImpl{db: db}
}

// InsertNotice implements notice.Repository.
func (r *noticeRepositoryImpl) InsertNotice(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO notices (title, description, attachment_url, notify_by_email, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, attachment_url, notify_by_email, created_by, created_at
	`

	var created notice.Notice
	err := q.QueryRow(ctx, insertQuery,
		n.Title, n.Description, n.AttachmentURL, n.NotifyByEmail, n.CreatedBy,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.AttachmentURL,
		&created.NotifyByEmail,
		&created.CreatedBy,
		&created.CreatedAt,
	)
	if err != nil {
		return notice.Notice{}, err
	}
	return created, nil
}

// ListNotices implements notice.Repository.
func (r *noticeRepositoryImpl) ListNotices(ctx context.Context) ([]notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, title, description, attachment_url, notify_by_email, created_by, created_at FROM notices ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notices := []notice.Notice{}
	for rows.Next() {
		var n notice.Notice
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Description, &n.AttachmentURL,
			&n.NotifyByEmail, &n.CreatedBy, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// InsertNotification implements notice.Repository.
func (r *noticeRepositoryImpl) InsertNotification(ctx context.Context, n notice.Notification) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO notifications (recipient_email, title, message) VALUES ($1, $2, $3)`,
		n.RecipientEmail, n.Title, n.Message,
	)
	return err
}

// ListNotifications implements notice.Repository.
func (r *noticeRepositoryImpl) ListNotifications(ctx context.Context, recipientEmail string) ([]notice.Notification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, recipient_email, title, message, read, created_at FROM notifications WHERE recipient_email = $1 ORDER BY created_at DESC`,
		recipientEmail,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []notice.Notification{}
	for rows.Next() {
		var n notice.Notification
		if err := rows.Scan(&n.ID, &n.RecipientEmail, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements notice.Repository. The recipient filter stops
// one employee from acknowledging another's notifications.
func (r *noticeRepositoryImpl) MarkRead(ctx context.Context, id string, recipientEmail string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_email = $2`,
		id, recipientEmail,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNotificationNotFound
	}
	return nil
}
