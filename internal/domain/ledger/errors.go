package ledger

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrEarningNotFound     = errors.New("earning not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrBucketNotFound      = errors.New("monthly bucket not found")
	ErrBalanceNotFound     = errors.New("balance row not found")
	ErrInsufficientProfit  = errors.New("insufficient remaining profit to share")
)
