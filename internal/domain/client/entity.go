package client

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID        string
	ClientID  string
	Name      string
	Country   *string
	Email     *string
	Messenger *string
	CreatedAt time.Time
}

// OrderHistoryEntry is an append-only log row; the original system kept
// these as an unbounded embedded array, here they live in their own
// table.
type OrderHistoryEntry struct {
	ID        string
	ClientID  string
	OrderID   string
	Note      *string
	CreatedAt time.Time
}

type PaymentHistoryEntry struct {
	ID        string
	ClientID  string
	Amount    decimal.Decimal
	Month     *string
	Year      *int
	Note      *string
	CreatedAt time.Time
}
