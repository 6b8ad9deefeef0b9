package ledger

import (
	"github.com/retouchhive/office-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

func validMonthYear(errs validator.ValidationErrors, month string, year int) validator.ValidationErrors {
	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a full English month name"})
	}
	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	return errs
}

type AddExpenseRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note"`
	Month  string          `json:"month"`
	Year   int             `json:"year"`
}

func (r *AddExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	errs = validMonthYear(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddBalanceRequest tops up the main balance (Credit) or moves money
// between main and HR (In / Out).
type AddBalanceRequest struct {
	Target string          `json:"target"` // "main" or "hr"
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note"`
}

func (r *AddBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Target != BalanceMain && r.Target != BalanceHR {
		errs = append(errs, validator.ValidationError{Field: "target", Message: "target must be main or hr"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddEarningRequest struct {
	ClientID     string          `json:"client_id"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	USDAmount    decimal.Decimal `json:"usd_amount"`
	Charge       decimal.Decimal `json:"charge"`
	Receivable   decimal.Decimal `json:"receivable"`
	Rate         decimal.Decimal `json:"rate"`
	ConvertedBDT decimal.Decimal `json:"converted_bdt"`
	Status       string          `json:"status"`
	Note         *string         `json:"note"`
}

func (r *AddEarningRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "client_id is required"})
	}
	if r.Status != string(StatusPaid) && r.Status != string(StatusUnpaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Paid or Unpaid"})
	}
	if !r.ConvertedBDT.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "converted_bdt", Message: "converted_bdt must be positive"})
	}
	errs = validMonthYear(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeEarningStatusRequest struct {
	EarningID string `json:"-"`
	Status    string `json:"status"`
}

func (r *ChangeEarningStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusPaid) && r.Status != string(StatusUnpaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Paid or Unpaid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEarningRequest struct {
	EarningID    string           `json:"-"`
	Month        *string          `json:"month"`
	Year         *int             `json:"year"`
	USDAmount    *decimal.Decimal `json:"usd_amount"`
	Charge       *decimal.Decimal `json:"charge"`
	Receivable   *decimal.Decimal `json:"receivable"`
	Rate         *decimal.Decimal `json:"rate"`
	ConvertedBDT *decimal.Decimal `json:"converted_bdt"`
	Status       *string          `json:"status"`
	Note         *string          `json:"note"`
}

func (r *UpdateEarningRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a full English month name"})
	}
	if r.Status != nil && *r.Status != string(StatusPaid) && *r.Status != string(StatusUnpaid) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Paid or Unpaid"})
	}
	if r.ConvertedBDT != nil && !r.ConvertedBDT.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "converted_bdt", Message: "converted_bdt must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShareProfitRequest struct {
	Month     string          `json:"month"`
	Year      int             `json:"year"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
}

func (r *ShareProfitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Recipient) {
		errs = append(errs, validator.ValidationError{Field: "recipient", Message: "recipient is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be positive"})
	}
	errs = validMonthYear(errs, r.Month, r.Year)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EarningResponse struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	USDAmount    decimal.Decimal `json:"usd_amount"`
	Charge       decimal.Decimal `json:"charge"`
	Receivable   decimal.Decimal `json:"receivable"`
	Rate         decimal.Decimal `json:"rate"`
	ConvertedBDT decimal.Decimal `json:"converted_bdt"`
	Status       string          `json:"status"`
	Note         *string         `json:"note,omitempty"`
}

type ExpenseResponse struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Amount  decimal.Decimal `json:"amount"`
	Note    *string         `json:"note,omitempty"`
	Month   string          `json:"month"`
	Year    int             `json:"year"`
	SpentAt string          `json:"spent_at"`
}

type BalanceResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type MonthlyProfitResponse struct {
	Month     string          `json:"month"`
	Year      int             `json:"year"`
	Earnings  decimal.Decimal `json:"earnings"`
	Expense   decimal.Decimal `json:"expense"`
	Profit    decimal.Decimal `json:"profit"`
	Remaining decimal.Decimal `json:"remaining"`
	Shared    []ShareEvent    `json:"shared"`
}

type TransactionResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note,omitempty"`
	OccurredAt string          `json:"occurred_at"`
}
