package employee

import (
	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

type RegisterRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Designation  *string `json:"designation"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	JoiningDate  *string `json:"joining_date"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if r.JoiningDate != nil && *r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	Email       string  `json:"-"`
	FullName    *string `json:"full_name"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	PhotoURL    *string `json:"photo_url"`
}

type SetStatusRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	switch Status(r.Status) {
	case StatusActive, StatusOnLeave, StatusDeactivate:
	default:
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active, On Leave or De-activate"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetSalaryPinRequest struct {
	Email string `json:"-"`
	Pin   string `json:"pin"`
}

func (r *SetSalaryPinRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Pin) < 4 || !validator.IsNumeric(r.Pin) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin must be at least 4 digits"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Designation  *string `json:"designation,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
	JoiningDate  *string `json:"joining_date,omitempty"`
	Status       string  `json:"status"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
