package ledger

import "github.com/shopspring/decimal"

// Contribution is an earning's effect on the main balance: the full
// converted amount when Paid, nothing while Unpaid.
func Contribution(status EarningStatus, convertedBDT decimal.Decimal) decimal.Decimal {
	if status == StatusPaid {
		return convertedBDT
	}
	return decimal.Zero
}

// BalanceDelta is the main-balance adjustment produced by editing an
// earning: newContribution - oldContribution.
func BalanceDelta(oldStatus EarningStatus, oldAmount decimal.Decimal, newStatus EarningStatus, newAmount decimal.Decimal) decimal.Decimal {
	return Contribution(newStatus, newAmount).Sub(Contribution(oldStatus, oldAmount))
}

// UnpaidContribution is an earning's effect on its unpaid bucket: the
// full converted amount while Unpaid, nothing once Paid.
func UnpaidContribution(status EarningStatus, convertedBDT decimal.Decimal) decimal.Decimal {
	if status == StatusUnpaid {
		return convertedBDT
	}
	return decimal.Zero
}

// UnpaidDelta mirrors BalanceDelta for the unpaid bucket.
func UnpaidDelta(oldStatus EarningStatus, oldAmount decimal.Decimal, newStatus EarningStatus, newAmount decimal.Decimal) decimal.Decimal {
	return UnpaidContribution(newStatus, newAmount).Sub(UnpaidContribution(oldStatus, oldAmount))
}

// AdjustmentType picks the transaction tag for a signed delta.
func AdjustmentType(delta decimal.Decimal) TxType {
	if delta.IsNegative() {
		return TxAdjustmentNeg
	}
	return TxAdjustmentPlus
}
