package order

import (
	"github.com/retouchhive/office-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	OrderID  string          `json:"order_id"`
	ClientID string          `json:"client_id"`
	Title    string          `json:"title"`
	Details  *string         `json:"details"`
	ImageQty int             `json:"image_qty"`
	Price    decimal.Decimal `json:"price"`
	Deadline *string         `json:"deadline"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrderID) {
		errs = append(errs, validator.ValidationError{Field: "order_id", Message: "order_id is required"})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "price cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	OrderID string `json:"-"`
	Status  string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !KnownStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown order status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExtendDeadlineRequest struct {
	OrderID  string `json:"-"`
	Deadline string `json:"deadline"`
}

func (r *ExtendDeadlineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Deadline) {
		errs = append(errs, validator.ValidationError{Field: "deadline", Message: "deadline is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrderResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ClientID    string          `json:"client_id"`
	Title       string          `json:"title"`
	Details     *string         `json:"details,omitempty"`
	ImageQty    int             `json:"image_qty"`
	Price       decimal.Decimal `json:"price"`
	Deadline    *string         `json:"deadline,omitempty"`
	OrderStatus string          `json:"order_status"`
	IsLocked    bool            `json:"is_locked"`
}

type ListFilter struct {
	ClientID *string
	Status   *Status
	Page     int
	Limit    int
}

type ListOrdersResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Orders     []OrderResponse `json:"orders"`
}
