package notice

import "context"

type Repository interface {
	InsertNotice(ctx context.Context, n Notice) (Notice, error)
	ListNotices(ctx context.Context) ([]Notice, error)

	InsertNotification(ctx context.Context, n Notification) error
	ListNotifications(ctx context.Context, recipientEmail string) ([]Notification, error)
	MarkRead(ctx context.Context, id string, recipientEmail string) error
}
