package employee

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusDeactivate Status = "De-activate"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	Email         string
	FullName      string
	Designation   *string
	Phone         *string
	Address       *string
	PhotoURL      *string
	JoiningDate   *time.Time
	Status        Status
	SalaryPinHash *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
