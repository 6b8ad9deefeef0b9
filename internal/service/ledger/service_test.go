package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/domain/ledger"
)

type balanceCall struct {
	name  string
	delta decimal.Decimal
}

type unpaidCall struct {
	month string
	year  int
	delta decimal.Decimal
}

type monthlyCall struct {
	month    string
	year     int
	earnings decimal.Decimal
	expense  decimal.Decimal
}

// fakeLedgerRepository keeps balances and earnings in memory and
// records every mutation so tests can assert on the exact sequence of
// writes an operation performed.
type fakeLedgerRepository struct {
	ledger.Repository

	balances map[string]decimal.Decimal
	earnings map[string]ledger.Earning
	nextID   int

	balanceCalls []balanceCall
	transactions []ledger.Transaction
	expenses     []ledger.Expense
	unpaidCalls  []unpaidCall
	monthlyCalls []monthlyCall
}

func newFakeLedgerRepository(mainBalance decimal.Decimal) *fakeLedgerRepository {
	return &fakeLedgerRepository{
		balances: map[string]decimal.Decimal{ledger.BalanceMain: mainBalance, ledger.BalanceHR: decimal.Zero},
		earnings: map[string]ledger.Earning{},
	}
}

func (f *fakeLedgerRepository) GetBalance(_ context.Context, name string) (ledger.Balance, error) {
	amount, ok := f.balances[name]
	if !ok {
		return ledger.Balance{}, ledger.ErrBalanceNotFound
	}
	return ledger.Balance{Name: name, Amount: amount}, nil
}

func (f *fakeLedgerRepository) IncrementBalance(_ context.Context, name string, delta decimal.Decimal) error {
	f.balances[name] = f.balances[name].Add(delta)
	f.balanceCalls = append(f.balanceCalls, balanceCall{name: name, delta: delta})
	return nil
}

func (f *fakeLedgerRepository) AppendTransaction(_ context.Context, tx ledger.Transaction) error {
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeLedgerRepository) InsertExpense(_ context.Context, e ledger.Expense) (ledger.Expense, error) {
	f.nextID++
	e.ID = fmt.Sprintf("exp-%d", f.nextID)
	f.expenses = append(f.expenses, e)
	return e, nil
}

func (f *fakeLedgerRepository) InsertEarning(_ context.Context, e ledger.Earning) (ledger.Earning, error) {
	f.nextID++
	e.ID = fmt.Sprintf("earn-%d", f.nextID)
	f.earnings[e.ID] = e
	return e, nil
}

func (f *fakeLedgerRepository) GetEarning(_ context.Context, id string) (ledger.Earning, error) {
	e, ok := f.earnings[id]
	if !ok {
		return ledger.Earning{}, ledger.ErrEarningNotFound
	}
	return e, nil
}

func (f *fakeLedgerRepository) UpdateEarning(_ context.Context, e ledger.Earning) error {
	if _, ok := f.earnings[e.ID]; !ok {
		return ledger.ErrEarningNotFound
	}
	f.earnings[e.ID] = e
	return nil
}

func (f *fakeLedgerRepository) UpsertMonthlyProfit(_ context.Context, month string, year int, earningsDelta, expenseDelta decimal.Decimal) error {
	f.monthlyCalls = append(f.monthlyCalls, monthlyCall{month: month, year: year, earnings: earningsDelta, expense: expenseDelta})
	return nil
}

func (f *fakeLedgerRepository) UpsertUnpaidBucket(_ context.Context, month string, year int, delta decimal.Decimal) error {
	f.unpaidCalls = append(f.unpaidCalls, unpaidCall{month: month, year: year, delta: delta})
	return nil
}

type fakeClientRepository struct {
	client.Repository
	payments []client.PaymentHistoryEntry
}

func (f *fakeClientRepository) AppendPaymentHistory(_ context.Context, entry client.PaymentHistoryEntry) error {
	f.payments = append(f.payments, entry)
	return nil
}

func newTestLedgerService(ledgerRepo *fakeLedgerRepository, clientRepo *fakeClientRepository) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		ledgerRepository: ledgerRepo,
		clientRepository: clientRepo,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
		now: func() time.Time {
			return time.Date(2026, time.August, 14, 10, 0, 0, 0, time.UTC)
		},
	}
}

func TestAddExpenseDebitsBalanceOnce(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(10000))
	svc := newTestLedgerService(repo, &fakeClientRepository{})

	err := svc.AddExpense(context.Background(), ledger.AddExpenseRequest{
		Title:  "Office rent",
		Amount: decimal.NewFromInt(2500),
		Month:  "August",
		Year:   2026,
	})
	require.NoError(t, err)

	require.Len(t, repo.balanceCalls, 1)
	assert.Equal(t, ledger.BalanceMain, repo.balanceCalls[0].name)
	assert.True(t, repo.balanceCalls[0].delta.Equal(decimal.NewFromInt(-2500)))
	assert.True(t, repo.balances[ledger.BalanceMain].Equal(decimal.NewFromInt(7500)))

	require.Len(t, repo.transactions, 1)
	assert.Equal(t, ledger.TxExpense, repo.transactions[0].Type)
	assert.True(t, repo.transactions[0].Amount.Equal(decimal.NewFromInt(2500)))

	require.Len(t, repo.monthlyCalls, 1)
	assert.Equal(t, "august", repo.monthlyCalls[0].month)
	assert.Equal(t, 2026, repo.monthlyCalls[0].year)
	assert.True(t, repo.monthlyCalls[0].earnings.IsZero())
	assert.True(t, repo.monthlyCalls[0].expense.Equal(decimal.NewFromInt(2500)))
}

func TestAddExpenseInsufficientBalance(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(100))
	svc := newTestLedgerService(repo, &fakeClientRepository{})

	err := svc.AddExpense(context.Background(), ledger.AddExpenseRequest{
		Title:  "Office rent",
		Amount: decimal.NewFromInt(2500),
		Month:  "August",
		Year:   2026,
	})
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	assert.Empty(t, repo.expenses)
	assert.Empty(t, repo.balanceCalls)
	assert.Empty(t, repo.transactions)
	assert.Empty(t, repo.monthlyCalls)
}

func TestAddEarningPaidCreditsMainBalance(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(1000))
	clients := &fakeClientRepository{}
	svc := newTestLedgerService(repo, clients)

	_, err := svc.AddEarning(context.Background(), ledger.AddEarningRequest{
		ClientID:     "CL-1",
		Month:        "August",
		Year:         2026,
		ConvertedBDT: decimal.NewFromInt(5000),
		Status:       string(ledger.StatusPaid),
	})
	require.NoError(t, err)

	require.Len(t, repo.balanceCalls, 1)
	assert.True(t, repo.balanceCalls[0].delta.Equal(decimal.NewFromInt(5000)))

	require.Len(t, repo.transactions, 1)
	assert.Equal(t, ledger.TxEarning, repo.transactions[0].Type)

	require.Len(t, clients.payments, 1)
	assert.Equal(t, "CL-1", clients.payments[0].ClientID)
	assert.True(t, clients.payments[0].Amount.Equal(decimal.NewFromInt(5000)))

	assert.Empty(t, repo.unpaidCalls)
	require.Len(t, repo.monthlyCalls, 1)
	assert.True(t, repo.monthlyCalls[0].earnings.Equal(decimal.NewFromInt(5000)))
}

func TestUnpaidEarningSettlement(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(1000))
	clients := &fakeClientRepository{}
	svc := newTestLedgerService(repo, clients)

	created, err := svc.AddEarning(context.Background(), ledger.AddEarningRequest{
		ClientID:     "CL-1",
		Month:        "August",
		Year:         2026,
		ConvertedBDT: decimal.NewFromInt(5000),
		Status:       string(ledger.StatusUnpaid),
	})
	require.NoError(t, err)

	// Unpaid money never touches the main balance; it accrues in the
	// month's unpaid bucket while the monthly earnings total grows.
	assert.Empty(t, repo.balanceCalls)
	assert.Empty(t, repo.transactions)
	assert.Empty(t, clients.payments)
	require.Len(t, repo.unpaidCalls, 1)
	assert.Equal(t, unpaidCall{month: "august", year: 2026, delta: decimal.NewFromInt(5000)}, repo.unpaidCalls[0])
	require.Len(t, repo.monthlyCalls, 1)
	assert.True(t, repo.monthlyCalls[0].earnings.Equal(decimal.NewFromInt(5000)))

	_, err = svc.ChangeEarningStatus(context.Background(), ledger.ChangeEarningStatusRequest{
		EarningID: created.ID,
		Status:    string(ledger.StatusPaid),
	})
	require.NoError(t, err)

	// Settling moves the amount from the unpaid bucket into the main
	// balance and logs an adjustment; the monthly earnings total
	// already counted it and must not grow again.
	require.Len(t, repo.balanceCalls, 1)
	assert.Equal(t, ledger.BalanceMain, repo.balanceCalls[0].name)
	assert.True(t, repo.balanceCalls[0].delta.Equal(decimal.NewFromInt(5000)))

	require.Len(t, repo.transactions, 1)
	assert.Equal(t, ledger.TxAdjustmentPlus, repo.transactions[0].Type)
	assert.True(t, repo.transactions[0].Amount.Equal(decimal.NewFromInt(5000)))

	require.Len(t, repo.unpaidCalls, 2)
	assert.Equal(t, unpaidCall{month: "august", year: 2026, delta: decimal.NewFromInt(-5000)}, repo.unpaidCalls[1])

	assert.Len(t, repo.monthlyCalls, 1)
}

func TestChangeEarningStatusSameStatusIsNoOp(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.Zero)
	repo.earnings["earn-1"] = ledger.Earning{
		ID:           "earn-1",
		ClientID:     "CL-1",
		Month:        "august",
		Year:         2026,
		ConvertedBDT: decimal.NewFromInt(5000),
		Status:       ledger.StatusUnpaid,
	}
	svc := newTestLedgerService(repo, &fakeClientRepository{})

	_, err := svc.ChangeEarningStatus(context.Background(), ledger.ChangeEarningStatusRequest{
		EarningID: "earn-1",
		Status:    string(ledger.StatusUnpaid),
	})
	require.NoError(t, err)

	assert.Empty(t, repo.balanceCalls)
	assert.Empty(t, repo.transactions)
	assert.Empty(t, repo.unpaidCalls)
	assert.Empty(t, repo.monthlyCalls)
}

func TestUpdateEarningMonthMoveRebooksBuckets(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(1000))
	repo.earnings["earn-1"] = ledger.Earning{
		ID:           "earn-1",
		ClientID:     "CL-1",
		Month:        "july",
		Year:         2026,
		ConvertedBDT: decimal.NewFromInt(5000),
		Status:       ledger.StatusUnpaid,
	}
	svc := newTestLedgerService(repo, &fakeClientRepository{})

	month := "August"
	updated, err := svc.UpdateEarning(context.Background(), ledger.UpdateEarningRequest{
		EarningID: "earn-1",
		Month:     &month,
	})
	require.NoError(t, err)
	assert.Equal(t, "august", updated.Month)
	assert.Equal(t, "august", repo.earnings["earn-1"].Month)

	// Same amount, same status: the main balance stays put and no
	// adjustment is logged.
	assert.Empty(t, repo.balanceCalls)
	assert.Empty(t, repo.transactions)

	// The old month gives up the earning's whole contribution and the
	// new month absorbs it, in both the unpaid and monthly buckets.
	require.Len(t, repo.unpaidCalls, 2)
	assert.Equal(t, unpaidCall{month: "july", year: 2026, delta: decimal.NewFromInt(-5000)}, repo.unpaidCalls[0])
	assert.Equal(t, unpaidCall{month: "august", year: 2026, delta: decimal.NewFromInt(5000)}, repo.unpaidCalls[1])

	require.Len(t, repo.monthlyCalls, 2)
	assert.Equal(t, "july", repo.monthlyCalls[0].month)
	assert.True(t, repo.monthlyCalls[0].earnings.Equal(decimal.NewFromInt(-5000)))
	assert.True(t, repo.monthlyCalls[0].expense.IsZero())
	assert.Equal(t, "august", repo.monthlyCalls[1].month)
	assert.True(t, repo.monthlyCalls[1].earnings.Equal(decimal.NewFromInt(5000)))
	assert.True(t, repo.monthlyCalls[1].expense.IsZero())
}

func TestUpdateEarningYearMovePaidKeepsBalance(t *testing.T) {
	repo := newFakeLedgerRepository(decimal.NewFromInt(1000))
	repo.earnings["earn-1"] = ledger.Earning{
		ID:           "earn-1",
		ClientID:     "CL-1",
		Month:        "december",
		Year:         2025,
		ConvertedBDT: decimal.NewFromInt(3000),
		Status:       ledger.StatusPaid,
	}
	svc := newTestLedgerService(repo, &fakeClientRepository{})

	year := 2026
	month := "January"
	_, err := svc.UpdateEarning(context.Background(), ledger.UpdateEarningRequest{
		EarningID: "earn-1",
		Month:     &month,
		Year:      &year,
	})
	require.NoError(t, err)

	// A paid earning has no unpaid contribution in either month, so
	// only the monthly earnings totals move.
	assert.Empty(t, repo.balanceCalls)
	assert.Empty(t, repo.unpaidCalls)

	require.Len(t, repo.monthlyCalls, 2)
	assert.Equal(t, monthlyCall{month: "december", year: 2025, earnings: decimal.NewFromInt(-3000), expense: decimal.Zero}, repo.monthlyCalls[0])
	assert.Equal(t, monthlyCall{month: "january", year: 2026, earnings: decimal.NewFromInt(3000), expense: decimal.Zero}, repo.monthlyCalls[1])
}
