package attendance

import "github.com/retouchhive/office-backend/internal/pkg/validator"

type PunchRequest struct {
	Email string `json:"email"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	Email       string  `json:"email"`
	Date        string  `json:"date"`
	CheckInTime string  `json:"check_in_time"`
	LateCheckIn *string `json:"late_check_in,omitempty"`
}

type CheckOutResponse struct {
	Email           string `json:"email"`
	Date            string `json:"date"`
	CheckOutTime    string `json:"check_out_time"`
	WorkingDuration string `json:"working_duration"`
}

type OTResponse struct {
	Email      string  `json:"email"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	OTDuration *string `json:"ot_duration,omitempty"`
}

type SnapshotFilter struct {
	Email     *string
	Date      *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f *SnapshotFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be YYYY-MM-DD"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SnapshotResponse struct {
	Email           string  `json:"email"`
	Date            string  `json:"date"`
	FullName        *string `json:"full_name,omitempty"`
	Designation     *string `json:"designation,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	PhotoURL        *string `json:"photo_url,omitempty"`
	CheckInTime     *string `json:"check_in_time,omitempty"`
	LateCheckIn     *string `json:"late_check_in,omitempty"`
	CheckOutTime    *string `json:"check_out_time,omitempty"`
	WorkingDuration *string `json:"working_duration,omitempty"`
	OTDuration      *string `json:"ot_duration,omitempty"`
}

type ListSnapshotsResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Snapshots  []SnapshotResponse `json:"snapshots"`
}
