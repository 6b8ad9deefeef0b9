package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestContribution(t *testing.T) {
	assert.True(t, Contribution(StatusPaid, d(5000)).Equal(d(5000)))
	assert.True(t, Contribution(StatusUnpaid, d(5000)).Equal(decimal.Zero))
}

func TestBalanceDelta(t *testing.T) {
	cases := []struct {
		name      string
		oldStatus EarningStatus
		oldAmount decimal.Decimal
		newStatus EarningStatus
		newAmount decimal.Decimal
		want      decimal.Decimal
	}{
		{"unpaid to paid", StatusUnpaid, d(5000), StatusPaid, d(5000), d(5000)},
		{"paid to unpaid", StatusPaid, d(5000), StatusUnpaid, d(5000), d(-5000)},
		{"paid amount raised", StatusPaid, d(5000), StatusPaid, d(7000), d(2000)},
		{"unpaid amount changed", StatusUnpaid, d(5000), StatusUnpaid, d(9000), d(0)},
		{"unchanged paid", StatusPaid, d(5000), StatusPaid, d(5000), d(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BalanceDelta(c.oldStatus, c.oldAmount, c.newStatus, c.newAmount)
			assert.True(t, got.Equal(c.want), "got %s want %s", got, c.want)
		})
	}
}

func TestUnpaidDelta(t *testing.T) {
	cases := []struct {
		name      string
		oldStatus EarningStatus
		oldAmount decimal.Decimal
		newStatus EarningStatus
		newAmount decimal.Decimal
		want      decimal.Decimal
	}{
		{"unpaid to paid", StatusUnpaid, d(5000), StatusPaid, d(5000), d(-5000)},
		{"paid to unpaid", StatusPaid, d(5000), StatusUnpaid, d(5000), d(5000)},
		{"unpaid amount raised", StatusUnpaid, d(5000), StatusUnpaid, d(8000), d(3000)},
		{"paid amount changed", StatusPaid, d(5000), StatusPaid, d(9000), d(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := UnpaidDelta(c.oldStatus, c.oldAmount, c.newStatus, c.newAmount)
			assert.True(t, got.Equal(c.want), "got %s want %s", got, c.want)
		})
	}
}

func TestAdjustmentType(t *testing.T) {
	assert.Equal(t, TxAdjustmentPlus, AdjustmentType(d(5000)))
	assert.Equal(t, TxAdjustmentPlus, AdjustmentType(decimal.Zero))
	assert.Equal(t, TxAdjustmentNeg, AdjustmentType(d(-1)))
}
