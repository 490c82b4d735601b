package campaign

import (
	"github.com/shopspring/decimal"

	"github.com/blues/cfe/internal/model"
)

// ReachedGoal reports whether the pledged total meets the goal. Exact at
// the boundary: pledged == goal counts as reached. Policy-independent; the
// campaign type only decides what happens when this is false.
func ReachedGoal(pledged, goal decimal.Decimal) bool {
	return pledged.GreaterThanOrEqual(goal)
}

// PendingReachedGoal reports whether confirmed plus still-unconfirmed
// contributions would meet the goal. Used to keep a campaign open for
// pending confirmations instead of failing it outright.
func PendingReachedGoal(pledged, waiting, goal decimal.Decimal) bool {
	return pledged.Add(waiting).GreaterThanOrEqual(goal)
}

// OutcomeOnExpiry returns the state an expired campaign moves to.
//
// mayWait means the goal could still be met by contributions awaiting
// confirmation (or such contributions are inside their grace window).
// A flexible campaign never fails automatically on expiry: it keeps what
// was pledged and waits for manual fund confirmation.
func OutcomeOnExpiry(t model.CampaignType, reached, mayWait bool) model.ProjectState {
	switch {
	case reached:
		return model.ProjectStateSuccessful
	case mayWait:
		return model.ProjectStateWaitingFunds
	case t.Flexible():
		return model.ProjectStateWaitingFunds
	default:
		return model.ProjectStateFailed
	}
}

// ReachedGoal 项目是否达标
func (e *Engine) ReachedGoal(p model.Project, l Ledger) bool {
	return ReachedGoal(l.Pledged(), p.Goal)
}

// PendingReachedGoal 含待确认出资是否达标
func (e *Engine) PendingReachedGoal(p model.Project, l Ledger) bool {
	return PendingReachedGoal(l.Pledged(), l.Waiting(), p.Goal)
}
