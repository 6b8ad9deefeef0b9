package ledger

import "context"

type Service interface {
	// AddExpense draws the amount from the main balance, logs an
	// Expense transaction and bumps the monthly bucket atomically.
	AddExpense(ctx context.Context, req AddExpenseRequest) error

	// AddBalance tops up main (Credit) or funds HR from main (In to hr,
	// Out from main).
	AddBalance(ctx context.Context, req AddBalanceRequest) error

	AddEarning(ctx context.Context, req AddEarningRequest) (EarningResponse, error)
	ChangeEarningStatus(ctx context.Context, req ChangeEarningStatusRequest) (EarningResponse, error)
	UpdateEarning(ctx context.Context, req UpdateEarningRequest) (EarningResponse, error)
	ListEarnings(ctx context.Context, month string, year int) ([]EarningResponse, error)

	ShareProfit(ctx context.Context, req ShareProfitRequest) (MonthlyProfitResponse, error)

	GetBalances(ctx context.Context) ([]BalanceResponse, error)
	GetMonthlyProfit(ctx context.Context, month string, year int) (MonthlyProfitResponse, error)
	ListTransactions(ctx context.Context, limit int) ([]TransactionResponse, error)
	ListExpenses(ctx context.Context, month string, year int) ([]ExpenseResponse, error)
}
