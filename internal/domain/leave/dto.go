package leave

import (
	"time"

	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

type ApplyRequest struct {
	Email    string  `json:"email"`
	FromDate string  `json:"from_date"`
	ToDate   string  `json:"to_date"`
	Reason   *string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}

	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date cannot be before from_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestedDays counts the leave span inclusively.
func (r *ApplyRequest) RequestedDays() int {
	from, _ := validator.IsValidDate(r.FromDate)
	to, _ := validator.IsValidDate(r.ToDate)
	return int(to.Sub(from)/(24*time.Hour)) + 1
}

type DecideRequest struct {
	ApplicationID string `json:"-"`
	Approve       bool   `json:"approve"`
}

type ApplicationResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FromDate string  `json:"from_date"`
	ToDate   string  `json:"to_date"`
	Days     int     `json:"days"`
	Reason   *string `json:"reason,omitempty"`
	Status   string  `json:"status"`
}

type BalanceResponse struct {
	Email       string `json:"email"`
	CasualLeave int    `json:"casual_leave"`
}
