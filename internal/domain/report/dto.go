package report

import "github.com/shopspring/decimal"

// MonthlySummary is the admin dashboard's ledger roll-up for one
// (month, year) bucket.
type MonthlySummary struct {
	Month     string          `json:"month"`
	Year      int             `json:"year"`
	Earnings  decimal.Decimal `json:"earnings"`
	Expense   decimal.Decimal `json:"expense"`
	Profit    decimal.Decimal `json:"profit"`
	Remaining decimal.Decimal `json:"remaining"`
	Unpaid    decimal.Decimal `json:"unpaid"`
}

type ReceivableRow struct {
	ClientID string          `json:"client_id"`
	Month    string          `json:"month"`
	Year     int             `json:"year"`
	Amount   decimal.Decimal `json:"amount"`
}
