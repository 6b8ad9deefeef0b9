package client

import (
	"github.com/retouchhive/office-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	ClientID  string  `json:"client_id"`
	Name      string  `json:"name"`
	Country   *string `json:"country"`
	Email     *string `json:"email"`
	Messenger *string `json:"messenger"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientResponse struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"client_id"`
	Name      string  `json:"name"`
	Country   *string `json:"country,omitempty"`
	Email     *string `json:"email,omitempty"`
	Messenger *string `json:"messenger,omitempty"`
}

type OrderHistoryResponse struct {
	OrderID   string  `json:"order_id"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type PaymentHistoryResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Month     *string         `json:"month,omitempty"`
	Year      *int            `json:"year,omitempty"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type ClientDetailResponse struct {
	Client         ClientResponse           `json:"client"`
	OrderHistory   []OrderHistoryResponse   `json:"order_history"`
	PaymentHistory []PaymentHistoryResponse `json:"payment_history"`
}
