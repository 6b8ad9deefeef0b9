package shift

import "github.com/retouchhive/office-backend/internal/pkg/validator"

type AssignRequest struct {
	Email     string  `json:"email"`
	ShiftName string  `json:"shift_name"`
	EntryTime *string `json:"entry_time"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	switch Name(r.ShiftName) {
	case Morning, Evening, Night, General:
	default:
		errs = append(errs, validator.ValidationError{Field: "shift_name", Message: "shift_name must be Morning, Evening, Night or General"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollOTRequest struct {
	Email string `json:"email"`
}

func (r *EnrollOTRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	ShiftName string  `json:"shift_name"`
	EntryTime *string `json:"entry_time,omitempty"`
	IsOT      bool    `json:"is_ot"`
}
