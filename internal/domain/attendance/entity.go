package attendance

import "time"

type RecordKind string

const (
	KindCheckIn  RecordKind = "check_in"
	KindCheckOut RecordKind = "check_out"
	KindOTStart  RecordKind = "ot_start"
	KindOTStop   RecordKind = "ot_stop"
)

// Record is one punch event. At most one record exists per
// (email, date, kind); the database unique index enforces it.
type Record struct {
	ID             string
	Email          string
	Date           time.Time
	Kind           RecordKind
	OccurredAt     time.Time
	LateDuration   *string
	WorkedDuration *string
	CreatedAt      time.Time
}

// Snapshot is the per-(email, date) denormalized row the admin
// dashboard reads. Check-in, check-out and OT-stop each upsert their
// slice of it.
type Snapshot struct {
	ID              string
	Email           string
	Date            time.Time
	FullName        *string
	Designation     *string
	Phone           *string
	PhotoURL        *string
	CheckInTime     *string
	LateCheckIn     *string
	CheckOutTime    *string
	WorkingDuration *string
	WorkingSeconds  int64
	OTDuration      *string
	OTSeconds       int64
	UpdatedAt       time.Time
}
