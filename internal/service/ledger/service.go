package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/domain/ledger"
	"github.com/retouchhive/office-backend/internal/pkg/database"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
	"github.com/retouchhive/office-backend/internal/repository/postgresql"
)

// LedgerServiceImpl runs every multi-row bookkeeping operation inside
// a single database transaction, so a crash mid-operation can never
// leave the balances, buckets and transaction log disagreeing.
type LedgerServiceImpl struct {
	ledgerRepository ledger.Repository
	clientRepository client.Repository
	runInTx          func(ctx context.Context, fn func(ctx context.Context) error) error
	now              func() time.Time
}

func NewLedgerService(db *database.DB, ledgerRepository ledger.Repository, clientRepository client.Repository) ledger.Service {
	return &LedgerServiceImpl{
		ledgerRepository: ledgerRepository,
		clientRepository: clientRepository,
		runInTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

func toEarningResponse(e ledger.Earning) ledger.EarningResponse {
	return ledger.EarningResponse{
		ID:           e.ID,
		ClientID:     e.ClientID,
		Month:        e.Month,
		Year:         e.Year,
		USDAmount:    e.USDAmount,
		Charge:       e.Charge,
		Receivable:   e.Receivable,
		Rate:         e.Rate,
		ConvertedBDT: e.ConvertedBDT,
		Status:       string(e.Status),
		Note:         e.Note,
	}
}

// AddExpense implements ledger.Service.
func (s *LedgerServiceImpl) AddExpense(ctx context.Context, req ledger.AddExpenseRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	month := validator.NormalizeMonth(req.Month)

	return s.runInTx(ctx, func(txCtx context.Context) error {
		main, err := s.ledgerRepository.GetBalance(txCtx, ledger.BalanceMain)
		if err != nil {
			return err
		}
		if main.Amount.LessThan(req.Amount) {
			return ledger.ErrInsufficientBalance
		}

		if _, err := s.ledgerRepository.InsertExpense(txCtx, ledger.Expense{
			Title:   req.Title,
			Amount:  req.Amount,
			Note:    req.Note,
			Month:   month,
			Year:    req.Year,
			SpentAt: s.now(),
		}); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, req.Amount.Neg()); err != nil {
			return fmt.Errorf("failed to decrement main balance: %w", err)
		}

		if err := s.ledgerRepository.UpsertMonthlyProfit(txCtx, month, req.Year, decimal.Zero, req.Amount); err != nil {
			return fmt.Errorf("failed to update monthly bucket: %w", err)
		}

		return s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
			Type:       ledger.TxExpense,
			Amount:     req.Amount,
			Note:       req.Note,
			OccurredAt: s.now(),
		})
	})
}

// AddBalance implements ledger.Service. Topping up main logs a Credit;
// funding HR moves money out of main and logs an In/Out pair.
func (s *LedgerServiceImpl) AddBalance(ctx context.Context, req ledger.AddBalanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.runInTx(ctx, func(txCtx context.Context) error {
		if req.Target == ledger.BalanceMain {
			if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, req.Amount); err != nil {
				return err
			}
			return s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
				Type:       ledger.TxCredit,
				Amount:     req.Amount,
				Note:       req.Note,
				OccurredAt: s.now(),
			})
		}

		main, err := s.ledgerRepository.GetBalance(txCtx, ledger.BalanceMain)
		if err != nil {
			return err
		}
		if main.Amount.LessThan(req.Amount) {
			return ledger.ErrInsufficientBalance
		}

		if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, req.Amount.Neg()); err != nil {
			return err
		}
		if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceHR, req.Amount); err != nil {
			return err
		}

		if err := s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
			Type:       ledger.TxOut,
			Amount:     req.Amount,
			Note:       req.Note,
			OccurredAt: s.now(),
		}); err != nil {
			return err
		}
		return s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
			Type:       ledger.TxIn,
			Amount:     req.Amount,
			Note:       req.Note,
			OccurredAt: s.now(),
		})
	})
}

// AddEarning implements ledger.Service. A Paid earning lands in the
// main balance immediately; an Unpaid one accrues in the month's
// unpaid bucket instead. Either way the monthly earnings total grows.
func (s *LedgerServiceImpl) AddEarning(ctx context.Context, req ledger.AddEarningRequest) (ledger.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EarningResponse{}, err
	}
	month := validator.NormalizeMonth(req.Month)
	status := ledger.EarningStatus(req.Status)

	var created ledger.Earning
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.ledgerRepository.InsertEarning(txCtx, ledger.Earning{
			ClientID:     req.ClientID,
			Month:        month,
			Year:         req.Year,
			USDAmount:    req.USDAmount,
			Charge:       req.Charge,
			Receivable:   req.Receivable,
			Rate:         req.Rate,
			ConvertedBDT: req.ConvertedBDT,
			Status:       status,
			Note:         req.Note,
		})
		if txErr != nil {
			return fmt.Errorf("failed to insert earning: %w", txErr)
		}

		if status == ledger.StatusPaid {
			if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, req.ConvertedBDT); err != nil {
				return err
			}
			if err := s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
				Type:       ledger.TxEarning,
				Amount:     req.ConvertedBDT,
				Note:       req.Note,
				OccurredAt: s.now(),
			}); err != nil {
				return err
			}
			year := req.Year
			if err := s.clientRepository.AppendPaymentHistory(txCtx, client.PaymentHistoryEntry{
				ClientID: req.ClientID,
				Amount:   req.ConvertedBDT,
				Month:    &month,
				Year:     &year,
				Note:     req.Note,
			}); err != nil {
				return err
			}
		} else {
			if err := s.ledgerRepository.UpsertUnpaidBucket(txCtx, month, req.Year, req.ConvertedBDT); err != nil {
				return err
			}
		}

		return s.ledgerRepository.UpsertMonthlyProfit(txCtx, month, req.Year, req.ConvertedBDT, decimal.Zero)
	})
	if err != nil {
		return ledger.EarningResponse{}, err
	}

	return toEarningResponse(created), nil
}

// applyEarningDeltas reconciles the main balance, the unpaid buckets
// and the transaction log after an earning changed shape. The main
// balance is global so its delta never depends on the bucket key, but
// when the (month, year) key itself moves the old bucket gives up the
// earning's whole contribution and the new bucket absorbs it.
func (s *LedgerServiceImpl) applyEarningDeltas(txCtx context.Context, old, updated ledger.Earning) error {
	balanceDelta := ledger.BalanceDelta(old.Status, old.ConvertedBDT, updated.Status, updated.ConvertedBDT)
	if !balanceDelta.IsZero() {
		if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, balanceDelta); err != nil {
			return err
		}
		if err := s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
			Type:       ledger.AdjustmentType(balanceDelta),
			Amount:     balanceDelta.Abs(),
			Note:       updated.Note,
			OccurredAt: s.now(),
		}); err != nil {
			return err
		}
	}

	if old.Month == updated.Month && old.Year == updated.Year {
		unpaidDelta := ledger.UnpaidDelta(old.Status, old.ConvertedBDT, updated.Status, updated.ConvertedBDT)
		if !unpaidDelta.IsZero() {
			if err := s.ledgerRepository.UpsertUnpaidBucket(txCtx, updated.Month, updated.Year, unpaidDelta); err != nil {
				return err
			}
		}

		earningsDelta := updated.ConvertedBDT.Sub(old.ConvertedBDT)
		if !earningsDelta.IsZero() {
			if err := s.ledgerRepository.UpsertMonthlyProfit(txCtx, updated.Month, updated.Year, earningsDelta, decimal.Zero); err != nil {
				return err
			}
		}
		return nil
	}

	oldUnpaid := ledger.UnpaidContribution(old.Status, old.ConvertedBDT)
	if !oldUnpaid.IsZero() {
		if err := s.ledgerRepository.UpsertUnpaidBucket(txCtx, old.Month, old.Year, oldUnpaid.Neg()); err != nil {
			return err
		}
	}
	newUnpaid := ledger.UnpaidContribution(updated.Status, updated.ConvertedBDT)
	if !newUnpaid.IsZero() {
		if err := s.ledgerRepository.UpsertUnpaidBucket(txCtx, updated.Month, updated.Year, newUnpaid); err != nil {
			return err
		}
	}

	if !old.ConvertedBDT.IsZero() {
		if err := s.ledgerRepository.UpsertMonthlyProfit(txCtx, old.Month, old.Year, old.ConvertedBDT.Neg(), decimal.Zero); err != nil {
			return err
		}
	}
	if !updated.ConvertedBDT.IsZero() {
		if err := s.ledgerRepository.UpsertMonthlyProfit(txCtx, updated.Month, updated.Year, updated.ConvertedBDT, decimal.Zero); err != nil {
			return err
		}
	}
	return nil
}

// ChangeEarningStatus implements ledger.Service.
func (s *LedgerServiceImpl) ChangeEarningStatus(ctx context.Context, req ledger.ChangeEarningStatusRequest) (ledger.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EarningResponse{}, err
	}

	var updated ledger.Earning
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		old, err := s.ledgerRepository.GetEarning(txCtx, req.EarningID)
		if err != nil {
			return err
		}

		updated = old
		updated.Status = ledger.EarningStatus(req.Status)
		if updated.Status == old.Status {
			return nil
		}

		if err := s.ledgerRepository.UpdateEarning(txCtx, updated); err != nil {
			return err
		}
		return s.applyEarningDeltas(txCtx, old, updated)
	})
	if err != nil {
		return ledger.EarningResponse{}, err
	}

	return toEarningResponse(updated), nil
}

// UpdateEarning implements ledger.Service. Moving the earning to a
// different (month, year) rebooks its contribution from the old
// buckets into the new ones.
func (s *LedgerServiceImpl) UpdateEarning(ctx context.Context, req ledger.UpdateEarningRequest) (ledger.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.EarningResponse{}, err
	}

	var updated ledger.Earning
	err := s.runInTx(ctx, func(txCtx context.Context) error {
		old, err := s.ledgerRepository.GetEarning(txCtx, req.EarningID)
		if err != nil {
			return err
		}

		updated = old
		if req.Month != nil {
			updated.Month = validator.NormalizeMonth(*req.Month)
		}
		if req.Year != nil {
			updated.Year = *req.Year
		}
		if req.USDAmount != nil {
			updated.USDAmount = *req.USDAmount
		}
		if req.Charge != nil {
			updated.Charge = *req.Charge
		}
		if req.Receivable != nil {
			updated.Receivable = *req.Receivable
		}
		if req.Rate != nil {
			updated.Rate = *req.Rate
		}
		if req.ConvertedBDT != nil {
			updated.ConvertedBDT = *req.ConvertedBDT
		}
		if req.Status != nil {
			updated.Status = ledger.EarningStatus(*req.Status)
		}
		if req.Note != nil {
			updated.Note = req.Note
		}

		if err := s.ledgerRepository.UpdateEarning(txCtx, updated); err != nil {
			return err
		}
		return s.applyEarningDeltas(txCtx, old, updated)
	})
	if err != nil {
		return ledger.EarningResponse{}, err
	}

	return toEarningResponse(updated), nil
}

// ListEarnings implements ledger.Service.
func (s *LedgerServiceImpl) ListEarnings(ctx context.Context, month string, year int) ([]ledger.EarningResponse, error) {
	earnings, err := s.ledgerRepository.ListEarnings(ctx, validator.NormalizeMonth(month), year)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.EarningResponse, 0, len(earnings))
	for _, e := range earnings {
		responses = append(responses, toEarningResponse(e))
	}
	return responses, nil
}

// ShareProfit implements ledger.Service. The share comes out of the
// month's remaining profit and out of the main balance together.
func (s *LedgerServiceImpl) ShareProfit(ctx context.Context, req ledger.ShareProfitRequest) (ledger.MonthlyProfitResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.MonthlyProfitResponse{}, err
	}
	month := validator.NormalizeMonth(req.Month)

	err := s.runInTx(ctx, func(txCtx context.Context) error {
		bucket, err := s.ledgerRepository.GetMonthlyProfit(txCtx, month, req.Year)
		if err != nil {
			return err
		}
		if bucket.Remaining.LessThan(req.Amount) {
			return ledger.ErrInsufficientProfit
		}

		main, err := s.ledgerRepository.GetBalance(txCtx, ledger.BalanceMain)
		if err != nil {
			return err
		}
		if main.Amount.LessThan(req.Amount) {
			return ledger.ErrInsufficientBalance
		}

		if err := s.ledgerRepository.AppendShareEvent(txCtx, month, req.Year, ledger.ShareEvent{
			Recipient: req.Recipient,
			Amount:    req.Amount,
			Note:      req.Note,
			SharedAt:  s.now(),
		}); err != nil {
			return err
		}

		if err := s.ledgerRepository.IncrementBalance(txCtx, ledger.BalanceMain, req.Amount.Neg()); err != nil {
			return err
		}

		note := fmt.Sprintf("profit share: %s", req.Recipient)
		return s.ledgerRepository.AppendTransaction(txCtx, ledger.Transaction{
			Type:       ledger.TxOut,
			Amount:     req.Amount,
			Note:       &note,
			OccurredAt: s.now(),
		})
	})
	if err != nil {
		return ledger.MonthlyProfitResponse{}, err
	}

	return s.GetMonthlyProfit(ctx, month, req.Year)
}

// GetBalances implements ledger.Service.
func (s *LedgerServiceImpl) GetBalances(ctx context.Context) ([]ledger.BalanceResponse, error) {
	responses := make([]ledger.BalanceResponse, 0, 2)
	for _, name := range []string{ledger.BalanceMain, ledger.BalanceHR} {
		b, err := s.ledgerRepository.GetBalance(ctx, name)
		if err != nil {
			return nil, err
		}
		responses = append(responses, ledger.BalanceResponse{Name: b.Name, Amount: b.Amount})
	}
	return responses, nil
}

// GetMonthlyProfit implements ledger.Service.
func (s *LedgerServiceImpl) GetMonthlyProfit(ctx context.Context, month string, year int) (ledger.MonthlyProfitResponse, error) {
	mp, err := s.ledgerRepository.GetMonthlyProfit(ctx, validator.NormalizeMonth(month), year)
	if err != nil {
		return ledger.MonthlyProfitResponse{}, err
	}

	return ledger.MonthlyProfitResponse{
		Month:     mp.Month,
		Year:      mp.Year,
		Earnings:  mp.Earnings,
		Expense:   mp.Expense,
		Profit:    mp.Profit,
		Remaining: mp.Remaining,
		Shared:    mp.Shared,
	}, nil
}

// ListTransactions implements ledger.Service.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, limit int) ([]ledger.TransactionResponse, error) {
	txs, err := s.ledgerRepository.ListTransactions(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ledger.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, ledger.TransactionResponse{
			ID:         tx.ID,
			Type:       string(tx.Type),
			Amount:     tx.Amount,
			Note:       tx.Note,
			OccurredAt: tx.OccurredAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}

// ListExpenses implements ledger.Service.
func (s *LedgerServiceImpl) ListExpenses(ctx context.Context, month string, year int) ([]ledger.ExpenseResponse, error) {
	expenses, err := s.ledgerRepository.ListExpenses(ctx, validator.NormalizeMonth(month), year)
	if err != nil {
		return nil, err
	}

	resp := make([]ledger.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, ledger.ExpenseResponse{
			ID:      e.ID,
			Title:   e.Title,
			Amount:  e.Amount,
			Note:    e.Note,
			Month:   e.Month,
			Year:    e.Year,
			SpentAt: e.SpentAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}
