package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending       Status = "Pending"
	StatusReviewing     Status = "Reviewing"
	StatusInProgress    Status = "In-progress"
	StatusReadyToQC     Status = "Ready to QC"
	StatusReadyToUpload Status = "Ready to Upload"
	StatusCompleted     Status = "Completed"
	StatusDelivered     Status = "Delivered"
	StatusHold          Status = "Hold"
	StatusCancel        Status = "Cancel"
)

// KnownStatus reports whether s is one of the nine order statuses.
func KnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInProgress, StatusReadyToQC,
		StatusReadyToUpload, StatusCompleted, StatusDelivered, StatusHold, StatusCancel:
		return true
	}
	return false
}

// Locks reports whether moving to s locks the order against further
// status changes.
func (s Status) Locks() bool {
	return s == StatusCompleted || s == StatusCancel
}

type Order struct {
	ID          string
	OrderID     string
	ClientID    string
	Title       string
	Details     *string
	ImageQty    int
	Price       decimal.Decimal
	Deadline    *time.Time
	OrderStatus Status
	IsLocked    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransition is the whole transition table: a locked order rejects
// every status change, an unlocked order accepts any known status.
// Unlocking happens only through ExtendDeadline and Restore.
func (o *Order) CanTransition(target Status) error {
	if !KnownStatus(target) {
		return ErrUnknownStatus
	}
	if o.IsLocked {
		return ErrOrderLocked
	}
	return nil
}
