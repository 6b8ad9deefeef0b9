package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository methods participate in the caller's transaction when one
// is carried on the context; every multi-step ledger operation runs in
// a single transaction.
type Repository interface {
	GetBalance(ctx context.Context, name string) (Balance, error)
	// IncrementBalance applies a signed delta via an atomic UPDATE.
	IncrementBalance(ctx context.Context, name string, delta decimal.Decimal) error

	AppendTransaction(ctx context.Context, tx Transaction) error
	ListTransactions(ctx context.Context, limit int) ([]Transaction, error)

	InsertExpense(ctx context.Context, e Expense) (Expense, error)
	ListExpenses(ctx context.Context, month string, year int) ([]Expense, error)

	InsertEarning(ctx context.Context, e Earning) (Earning, error)
	GetEarning(ctx context.Context, id string) (Earning, error)
	UpdateEarning(ctx context.Context, e Earning) error
	ListEarnings(ctx context.Context, month string, year int) ([]Earning, error)

	// UpsertMonthlyProfit creates the (month, year) bucket if absent and
	// applies the signed earnings/expense deltas, recomputing profit and
	// remaining.
	UpsertMonthlyProfit(ctx context.Context, month string, year int, earningsDelta, expenseDelta decimal.Decimal) error
	GetMonthlyProfit(ctx context.Context, month string, year int) (MonthlyProfit, error)
	AppendShareEvent(ctx context.Context, month string, year int, event ShareEvent) error

	// UpsertUnpaidBucket applies a signed delta to the (month, year)
	// unpaid total, creating the bucket if absent.
	UpsertUnpaidBucket(ctx context.Context, month string, year int, delta decimal.Decimal) error
	GetUnpaidBucket(ctx context.Context, month string, year int) (UnpaidBucket, error)
}
