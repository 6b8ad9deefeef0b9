package shift

import "time"

type Name string

const (
	Morning Name = "Morning"
	Evening Name = "Evening"
	Night   Name = "Night"
	General Name = "General"
)

// Assignment binds an employee to a shift. Each employee holds at most
// one regular assignment and at most one overtime enrollment (IsOT):
// the overtime row is a one-shot ticket consumed when overtime stops.
type Assignment struct {
	ID        string
	Email     string
	ShiftName Name
	EntryTime *string
	IsOT      bool
	CreatedAt time.Time
}
