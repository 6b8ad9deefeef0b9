package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/ledger"
	"github.com/retouchhive/office-backend/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepository attendance.Repository
	ledgerRepository     ledger.Repository
}

func NewReportService(attendanceRepository attendance.Repository, ledgerRepository ledger.Repository) report.Service {
	return &ReportServiceImpl{
		attendanceRepository: attendanceRepository,
		ledgerRepository:     ledgerRepository,
	}
}

// MonthlySummary implements report.Service. A month with no activity
// reads as all zeros rather than an error.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, month string, year int) (*report.MonthlySummary, error) {
	summary := &report.MonthlySummary{
		Month:     month,
		Year:      year,
		Earnings:  decimal.Zero,
		Expense:   decimal.Zero,
		Profit:    decimal.Zero,
		Remaining: decimal.Zero,
		Unpaid:    decimal.Zero,
	}

	mp, err := s.ledgerRepository.GetMonthlyProfit(ctx, month, year)
	if err != nil && !errors.Is(err, ledger.ErrBucketNotFound) {
		return nil, err
	}
	if err == nil {
		summary.Earnings = mp.Earnings
		summary.Expense = mp.Expense
		summary.Profit = mp.Profit
		summary.Remaining = mp.Remaining
	}

	bucket, err := s.ledgerRepository.GetUnpaidBucket(ctx, month, year)
	if err != nil && !errors.Is(err, ledger.ErrBucketNotFound) {
		return nil, err
	}
	if err == nil {
		summary.Unpaid = bucket.TotalConvertedBDT
	}

	return summary, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AttendanceXLSX implements report.Service.
func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, email string, from, to time.Time) ([]byte, error) {
	fromStr := from.Format("2006-01-02")
	toStr := to.Format("2006-01-02")
	filter := attendance.SnapshotFilter{StartDate: &fromStr, EndDate: &toStr}
	if email != "" {
		filter.Email = &email
	}

	snapshots, _, err := s.attendanceRepository.ListSnapshots(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Email", "Name", "Designation", "Check In", "Late", "Check Out", "Working Hours", "OT Hours"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, snap := range snapshots {
		values := []any{
			snap.Date.Format("2006-01-02"),
			snap.Email,
			deref(snap.FullName),
			deref(snap.Designation),
			deref(snap.CheckInTime),
			deref(snap.LateCheckIn),
			deref(snap.CheckOutTime),
			deref(snap.WorkingDuration),
			deref(snap.OTDuration),
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// EarningsXLSX implements report.Service.
func (s *ReportServiceImpl) EarningsXLSX(ctx context.Context, month string, year int) ([]byte, error) {
	earnings, err := s.ledgerRepository.ListEarnings(ctx, month, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Earnings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Client", "Month", "Year", "USD", "Charge", "Receivable", "Rate", "Converted BDT", "Status", "Note"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range earnings {
		values := []any{
			e.ClientID,
			e.Month,
			e.Year,
			e.USDAmount.InexactFloat64(),
			e.Charge.InexactFloat64(),
			e.Receivable.InexactFloat64(),
			e.Rate.InexactFloat64(),
			e.ConvertedBDT.InexactFloat64(),
			string(e.Status),
			deref(e.Note),
		}
		if err := writeRow(f, sheet, i+2, values); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Receivables implements report.Service. Unpaid earnings are grouped
// per client so the desk can chase outstanding balances.
func (s *ReportServiceImpl) Receivables(ctx context.Context, month string, year int) ([]report.ReceivableRow, error) {
	earnings, err := s.ledgerRepository.ListEarnings(ctx, month, year)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range earnings {
		if e.Status != ledger.StatusUnpaid {
			continue
		}
		if _, seen := totals[e.ClientID]; !seen {
			order = append(order, e.ClientID)
		}
		totals[e.ClientID] = totals[e.ClientID].Add(e.ConvertedBDT)
	}

	rows := make([]report.ReceivableRow, 0, len(order))
	for _, clientID := range order {
		rows = append(rows, report.ReceivableRow{
			ClientID: clientID,
			Month:    month,
			Year:     year,
			Amount:   totals[clientID],
		})
	}
	return rows, nil
}
