package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/domain/ledger"
)

type stubLedgerRepository struct {
	ledger.Repository
	earnings []ledger.Earning
}

func (s *stubLedgerRepository) ListEarnings(_ context.Context, _ string, _ int) ([]ledger.Earning, error) {
	return s.earnings, nil
}

func TestReceivables(t *testing.T) {
	note := "partial"
	repo := &stubLedgerRepository{earnings: []ledger.Earning{
		{ClientID: "CL-1", Status: ledger.StatusUnpaid, ConvertedBDT: decimal.NewFromInt(5000)},
		{ClientID: "CL-2", Status: ledger.StatusPaid, ConvertedBDT: decimal.NewFromInt(9000)},
		{ClientID: "CL-1", Status: ledger.StatusUnpaid, ConvertedBDT: decimal.NewFromInt(1500), Note: &note},
		{ClientID: "CL-3", Status: ledger.StatusUnpaid, ConvertedBDT: decimal.NewFromInt(200)},
	}}

	svc := NewReportService(nil, repo)

	rows, err := svc.Receivables(context.Background(), "January", 2026)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CL-1", rows[0].ClientID)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(6500)))
	assert.Equal(t, "CL-3", rows[1].ClientID)
	assert.True(t, rows[1].Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "January", rows[0].Month)
	assert.Equal(t, 2026, rows[0].Year)
}

func TestReceivablesEmptyMonth(t *testing.T) {
	svc := NewReportService(nil, &stubLedgerRepository{})

	rows, err := svc.Receivables(context.Background(), "March", 2026)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
