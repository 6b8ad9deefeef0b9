package notice

import "time"

type Notice struct {
	ID            string
	Title         string
	Description   string
	AttachmentURL *string
	NotifyByEmail bool
	CreatedBy     *string
	CreatedAt     time.Time
}

// Notification is an in-app message row; notices, leave decisions and
// HR actions all fan out through it.
type Notification struct {
	ID             string
	RecipientEmail string
	Title          string
	Message        string
	Read           bool
	CreatedAt      time.Time
}
