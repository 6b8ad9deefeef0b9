package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

type Balance struct {
	ID          string
	Email       string
	CasualLeave int
	UpdatedAt   time.Time
}

type Application struct {
	ID        string
	Email     string
	FromDate  time.Time
	ToDate    time.Time
	Days      int
	Reason    *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
