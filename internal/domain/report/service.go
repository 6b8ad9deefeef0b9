package report

import (
	"context"
	"time"
)

// Service builds exportable reports from attendance snapshots and
// ledger records.
type Service interface {
	MonthlySummary(ctx context.Context, month string, year int) (*MonthlySummary, error)
	// AttendanceXLSX renders attendance snapshots for a date range into
	// an XLSX workbook and returns the encoded bytes.
	AttendanceXLSX(ctx context.Context, email string, from, to time.Time) ([]byte, error)
	// EarningsXLSX renders one month's earnings into an XLSX workbook.
	EarningsXLSX(ctx context.Context, month string, year int) ([]byte, error)
	// Receivables totals unpaid earnings per client for one month.
	Receivables(ctx context.Context, month string, year int) ([]ReceivableRow, error)
}
