package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/retouchhive/office-backend/internal/domain/ledger"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.Repository {
	return &ledgerRepositoryImpl{db: db}
}

// GetBalance implements ledger.Repository.
func (r *ledgerRepositoryImpl) GetBalance(ctx context.Context, name string) (ledger.Balance, error) {
	q := GetQuerier(ctx, r.db)

	var b ledger.Balance
	err := q.QueryRow(ctx, `SELECT name, amount, updated_at FROM balances WHERE name = $1`, name).
		Scan(&b.Name, &b.Amount, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Balance{}, ledger.ErrBalanceNotFound
		}
		return ledger.Balance{}, err
	}
	return b, nil
}

// IncrementBalance implements ledger.Repository. The delta is applied
// in a single UPDATE so concurrent increments never lose writes.
func (r *ledgerRepositoryImpl) IncrementBalance(ctx context.Context, name string, delta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE balances SET amount = amount + $1, updated_at = NOW() WHERE name = $2`,
		delta, name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrBalanceNotFound
	}
	return nil
}

// AppendTransaction implements ledger.Repository.
func (r *ledgerRepositoryImpl) AppendTransaction(ctx context.Context, tx ledger.Transaction) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO transactions (tx_type, amount, note, occurred_at) VALUES ($1, $2, $3, $4)`,
		string(tx.Type), tx.Amount, tx.Note, tx.OccurredAt,
	)
	return err
}

// ListTransactions implements ledger.Repository.
func (r *ledgerRepositoryImpl) ListTransactions(ctx context.Context, limit int) ([]ledger.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT id, tx_type, amount, note, occurred_at, created_at FROM transactions ORDER BY occurred_at DESC`
	args := []any{}
	if limit > 0 {
		selectQuery += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []ledger.Transaction{}
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Note, &tx.OccurredAt, &tx.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// InsertExpense implements ledger.Repository.
func (r *ledgerRepositoryImpl) InsertExpense(ctx context.Context, e ledger.Expense) (ledger.Expense, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO expenses (title, amount, note, month, year, spent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, amount, note, month, year, spent_at, created_at
	`

	var created ledger.Expense
	err := q.QueryRow(ctx, insertQuery, e.Title, e.Amount, e.Note, e.Month, e.Year, e.SpentAt).Scan(
		&created.ID,
		&created.Title,
		&created.Amount,
		&created.Note,
		&created.Month,
		&created.Year,
		&created.SpentAt,
		&created.CreatedAt,
	)
	if err != nil {
		return ledger.Expense{}, err
	}
	return created, nil
}

// ListExpenses implements ledger.Repository.
func (r *ledgerRepositoryImpl) ListExpenses(ctx context.Context, month string, year int) ([]ledger.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, title, amount, note, month, year, spent_at, created_at FROM expenses WHERE month = $1 AND year = $2 ORDER BY spent_at DESC`,
		month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []ledger.Expense{}
	for rows.Next() {
		var e ledger.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Note, &e.Month, &e.Year, &e.SpentAt, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

const earningColumns = `id, client_id, month, year, usd_amount, charge, receivable, rate,
	converted_bdt, status, note, created_at, updated_at`

func scanEarning(row pgx.Row) (ledger.Earning, error) {
	var e ledger.Earning
	err := row.Scan(
		&e.ID,
		&e.ClientID,
		&e.Month,
		&e.Year,
		&e.USDAmount,
		&e.Charge,
		&e.Receivable,
		&e.Rate,
		&e.ConvertedBDT,
		&e.Status,
		&e.Note,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// InsertEarning implements ledger.Repository.
func (r *ledgerRepositoryImpl) InsertEarning(ctx context.Context, e ledger.Earning) (ledger.Earning, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO earnings (client_id, month, year, usd_amount, charge, receivable, rate, converted_bdt, status, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + earningColumns

	created, err := scanEarning(q.QueryRow(ctx, insertQuery,
		e.ClientID, e.Month, e.Year,
		e.USDAmount, e.Charge, e.Receivable, e.Rate, e.ConvertedBDT,
		string(e.Status), e.Note,
	))
	if err != nil {
		return ledger.Earning{}, err
	}
	return created, nil
}

// GetEarning implements ledger.Repository.
func (r *ledgerRepositoryImpl) GetEarning(ctx context.Context, id string) (ledger.Earning, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEarning(q.QueryRow(ctx, `SELECT `+earningColumns+` FROM earnings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Earning{}, ledger.ErrEarningNotFound
		}
		return ledger.Earning{}, err
	}
	return e, nil
}

// UpdateEarning implements ledger.Repository.
func (r *ledgerRepositoryImpl) UpdateEarning(ctx context.Context, e ledger.Earning) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE earnings
		SET usd_amount = $1, charge = $2, receivable = $3, rate = $4,
			converted_bdt = $5, status = $6, note = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, updateQuery,
		e.USDAmount, e.Charge, e.Receivable, e.Rate,
		e.ConvertedBDT, string(e.Status), e.Note, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrEarningNotFound
	}
	return nil
}

// ListEarnings implements ledger.Repository.
func (r *ledgerRepositoryImpl) ListEarnings(ctx context.Context, month string, year int) ([]ledger.Earning, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+earningColumns+` FROM earnings WHERE month = $1 AND year = $2 ORDER BY created_at DESC`,
		month, year,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earnings := []ledger.Earning{}
	for rows.Next() {
		e, err := scanEarning(rows)
		if err != nil {
			return nil, err
		}
		earnings = append(earnings, e)
	}
	return earnings, rows.Err()
}

// UpsertMonthlyProfit implements ledger.Repository. profit and
// remaining are recomputed from the accumulated totals in the same
// statement; remaining additionally absorbs any amount already shared.
func (r *ledgerRepositoryImpl) UpsertMonthlyProfit(ctx context.Context, month string, year int, earningsDelta, expenseDelta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO monthly_profits (month, year, earnings, expense, profit, remaining)
		VALUES ($1, $2, $3, $4, $3 - $4, $3 - $4)
		ON CONFLICT (month, year) DO UPDATE SET
			earnings  = monthly_profits.earnings + EXCLUDED.earnings,
			expense   = monthly_profits.expense + EXCLUDED.expense,
			profit    = monthly_profits.profit + EXCLUDED.earnings - EXCLUDED.expense,
			remaining = monthly_profits.remaining + EXCLUDED.earnings - EXCLUDED.expense
	`

	_, err := q.Exec(ctx, upsertQuery, month, year, earningsDelta, expenseDelta)
	return err
}

// GetMonthlyProfit implements ledger.Repository.
func (r *ledgerRepositoryImpl) GetMonthlyProfit(ctx context.Context, month string, year int) (ledger.MonthlyProfit, error) {
	q := GetQuerier(ctx, r.db)

	var mp ledger.MonthlyProfit
	var shared []byte
	err := q.QueryRow(ctx,
		`SELECT id, month, year, earnings, expense, profit, remaining, shared FROM monthly_profits WHERE month = $1 AND year = $2`,
		month, year,
	).Scan(&mp.ID, &mp.Month, &mp.Year, &mp.Earnings, &mp.Expense, &mp.Profit, &mp.Remaining, &shared)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.MonthlyProfit{}, ledger.ErrBucketNotFound
		}
		return ledger.MonthlyProfit{}, err
	}

	if err := json.Unmarshal(shared, &mp.Shared); err != nil {
		return ledger.MonthlyProfit{}, fmt.Errorf("decode shared events: %w", err)
	}
	return mp, nil
}

// AppendShareEvent implements ledger.Repository. The event lands in
// the JSONB array and the remaining total drops by the shared amount
// in one statement.
func (r *ledgerRepositoryImpl) AppendShareEvent(ctx context.Context, month string, year int, event ledger.ShareEvent) error {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode share event: %w", err)
	}

	updateQuery := `
		UPDATE monthly_profits
		SET shared = shared || $1::jsonb, remaining = remaining - $2
		WHERE month = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, updateQuery, payload, event.Amount, month, year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrBucketNotFound
	}
	return nil
}

// UpsertUnpaidBucket implements ledger.Repository.
func (r *ledgerRepositoryImpl) UpsertUnpaidBucket(ctx context.Context, month string, year int, delta decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO unpaid_buckets (month, year, total_converted_bdt)
		VALUES ($1, $2, $3)
		ON CONFLICT (month, year) DO UPDATE SET
			total_converted_bdt = unpaid_buckets.total_converted_bdt + EXCLUDED.total_converted_bdt
	`

	_, err := q.Exec(ctx, upsertQuery, month, year, delta)
	return err
}

// GetUnpaidBucket implements ledger.Repository.
func (r *ledgerRepositoryImpl) GetUnpaidBucket(ctx context.Context, month string, year int) (ledger.UnpaidBucket, error) {
	q := GetQuerier(ctx, r.db)

	var b ledger.UnpaidBucket
	err := q.QueryRow(ctx,
		`SELECT id, month, year, total_converted_bdt FROM unpaid_buckets WHERE month = $1 AND year = $2`,
		month, year,
	).Scan(&b.ID, &b.Month, &b.Year, &b.TotalConvertedBDT)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.UnpaidBucket{}, ledger.ErrBucketNotFound
		}
		return ledger.UnpaidBucket{}, err
	}
	return b, nil
}
