package campaign

import (
	"time"

	"github.com/blues/cfe/internal/model"
)

// Evaluate derives the current lifecycle state of a project from one
// consistent snapshot of its dates and ledger.
//
// Externally assigned states (draft, rejected, deleted) and finished
// outcomes (successful, failed) are absorbing: the derivation returns them
// untouched. For everything else the stored state is ignored and the state
// is recomputed from the time window and funding totals, so retried sweeps
// and concurrent readers reach the same decision.
//
// Evaluate is a query; persisting the transition it suggests is the
// scheduler's job.
func (e *Engine) Evaluate(p model.Project, l Ledger, now time.Time) model.ProjectState {
	if p.State.External() || p.State.Finished() {
		return p.State
	}
	if p.OnlineDate == nil {
		return p.State
	}
	if p.OnlineDate.After(now) {
		return model.ProjectStateSoon
	}
	if !e.Expired(p, now) {
		return model.ProjectStateOnline
	}
	pledged := l.Pledged()
	reached := ReachedGoal(pledged, p.Goal)
	mayWait := PendingReachedGoal(pledged, l.Waiting(), p.Goal) ||
		e.InTimeToWait(l.Contributions, now)
	return OutcomeOnExpiry(p.CampaignType, reached, mayWait)
}

// InTimeToWait reports whether any contribution is still awaiting
// confirmation inside its grace window. While true, an expired project is
// kept in waiting_funds rather than swept to a terminal state.
func (e *Engine) InTimeToWait(contributions []model.Contribution, now time.Time) bool {
	for _, c := range contributions {
		if c.State != model.ContributionWaitingConfirmation {
			continue
		}
		if now.Sub(c.CreatedAt) <= e.settings.WaitWindow {
			return true
		}
	}
	return false
}

// VisibleProjects filters out draft, rejected and deleted projects,
// preserving the order of the rest.
func VisibleProjects(projects []model.Project) []model.Project {
	visible := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.State.Visible() {
			visible = append(visible, p)
		}
	}
	return visible
}

// NotificationType returns the notification key for a project: the base
// key, suffixed with "_channel" when the project belongs to a channel.
func NotificationType(p model.Project, base string) string {
	if p.ChannelID != nil {
		return base + "_channel"
	}
	return base
}
