package notice

import "context"

type Service interface {
	// Create stores the notice (PDF attachment only) and, when asked,
	// enqueues the email broadcast; broadcast failures never fail the
	// notice itself.
	Create(ctx context.Context, req CreateRequest) (NoticeResponse, error)
	List(ctx context.Context) ([]NoticeResponse, error)

	// Notify writes one in-app notification row.
	Notify(ctx context.Context, recipientEmail, title, message string) error
	ListNotifications(ctx context.Context, recipientEmail string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string, recipientEmail string) error
}
