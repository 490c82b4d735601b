package campaign

import (
	"github.com/shopspring/decimal"

	"github.com/blues/cfe/internal/model"
)

var one = decimal.NewFromInt(1)

// NetAmount is the amount owed to the project owner: the confirmed total
// minus the platform fee. Exact decimal arithmetic throughout.
func (e *Engine) NetAmount(contributions []model.Contribution) decimal.Decimal {
	gross := decimal.Zero
	for _, c := range contributions {
		if c.State.Counted() {
			gross = gross.Add(c.Value)
		}
	}
	return gross.Mul(one.Sub(e.settings.PlatformFee))
}

// PaidOut sums the recorded payouts. Negative payout values represent
// reversals and subtract from the total.
func PaidOut(payouts []model.Payout) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payouts {
		total = total.Add(p.Value)
	}
	return total
}

// Paid reports whether the recorded payouts exactly match the net amount
// owed for the given contributions. No payouts, or a partial or mismatched
// total, is false; equality is exact, never approximate.
//
// Always recomputed from source values so reconciliation drift cannot be
// masked by a stale cache.
func (e *Engine) Paid(contributions []model.Contribution, payouts []model.Payout) bool {
	if len(payouts) == 0 {
		return false
	}
	return e.NetAmount(contributions).Equal(PaidOut(payouts))
}
