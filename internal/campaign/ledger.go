package campaign

import (
	"github.com/shopspring/decimal"

	"github.com/blues/cfe/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Ledger 项目出资台账
//
// Ledger aggregates one project's contributions by state into named totals.
// Total is the materialized rollup when one exists; a nil Total reads as
// zero everywhere. All methods are read-only over a single snapshot.
type Ledger struct {
	Contributions []model.Contribution
	Total         *model.ProjectTotal
}

// Pledged is the sum of confirmed contribution values. Reads through the
// cached rollup when present, otherwise sums directly.
func (l Ledger) Pledged() decimal.Decimal {
	if l.Total != nil {
		return l.Total.Pledged
	}
	return l.sum(model.ContributionConfirmed)
}

// Waiting is the sum of waiting_confirmation contribution values.
func (l Ledger) Waiting() decimal.Decimal {
	return l.sum(model.ContributionWaitingConfirmation)
}

// PledgedAndWaiting sums confirmed plus waiting_confirmation values.
// Always computed directly: it reflects transient state the rollup does
// not carry.
func (l Ledger) PledgedAndWaiting() decimal.Decimal {
	return l.sum(model.ContributionConfirmed, model.ContributionWaitingConfirmation)
}

// TotalContributions is the confirmed contribution count from the rollup,
// zero when no rollup exists.
func (l Ledger) TotalContributions() int64 {
	if l.Total == nil {
		return 0
	}
	return l.Total.TotalContributions
}

// TotalPaymentServiceFee is the accumulated gateway fee from the rollup,
// zero when no rollup exists.
func (l Ledger) TotalPaymentServiceFee() decimal.Decimal {
	if l.Total == nil {
		return decimal.Zero
	}
	return l.Total.TotalPaymentServiceFee
}

func (l Ledger) sum(states ...model.ContributionState) decimal.Decimal {
	total := decimal.Zero
	for _, c := range l.Contributions {
		for _, s := range states {
			if c.State == s {
				total = total.Add(c.Value)
				break
			}
		}
	}
	return total
}

// Progress returns the funding percentage, rounded to the nearest integer.
// Zero for non-positive goal or pledged; not clamped, so an overfunded
// campaign reports more than 100.
func Progress(goal, pledged decimal.Decimal) int {
	if goal.Sign() <= 0 || pledged.Sign() <= 0 {
		return 0
	}
	return int(pledged.Div(goal).Mul(hundred).Round(0).IntPart())
}

// Progress 项目筹款进度百分比
func (e *Engine) Progress(p model.Project, l Ledger) int {
	return Progress(p.Goal, l.Pledged())
}
