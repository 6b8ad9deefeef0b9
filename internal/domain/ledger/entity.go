package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EarningStatus string

const (
	StatusPaid   EarningStatus = "Paid"
	StatusUnpaid EarningStatus = "Unpaid"
)

type TxType string

const (
	TxExpense        TxType = "Expense"
	TxCredit         TxType = "Credit"
	TxEarning        TxType = "Earning"
	TxIn             TxType = "In"
	TxOut            TxType = "Out"
	TxAdjustmentPlus TxType = "Adjustment (+)"
	TxAdjustmentNeg  TxType = "Adjustment (-)"
)

// BalanceMain and BalanceHR name the two balance rows. The table holds
// exactly these two; there is no "first document" lookup.
const (
	BalanceMain = "main"
	BalanceHR   = "hr"
)

type Earning struct {
	ID           string
	ClientID     string
	Month        string
	Year         int
	USDAmount    decimal.Decimal
	Charge       decimal.Decimal
	Receivable   decimal.Decimal
	Rate         decimal.Decimal
	ConvertedBDT decimal.Decimal
	Status       EarningStatus
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Expense struct {
	ID        string
	Title     string
	Amount    decimal.Decimal
	Note      *string
	Month     string
	Year      int
	SpentAt   time.Time
	CreatedAt time.Time
}

type Balance struct {
	Name      string
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

type Transaction struct {
	ID         string
	Type       TxType
	Amount     decimal.Decimal
	Note       *string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// ShareEvent records one profit distribution out of a monthly bucket.
// The slice is stored as JSONB on the bucket row.
type ShareEvent struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	SharedAt  time.Time       `json:"shared_at"`
}

type MonthlyProfit struct {
	ID        string
	Month     string
	Year      int
	Earnings  decimal.Decimal
	Expense   decimal.Decimal
	Profit    decimal.Decimal
	Remaining decimal.Decimal
	Shared    []ShareEvent
}

type UnpaidBucket struct {
	ID                string
	Month             string
	Year              int
	TotalConvertedBDT decimal.Decimal
}
