package campaign

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blues/cfe/internal/model"
)

func TestReachedGoal(t *testing.T) {
	goal := decimal.NewFromInt(3000)

	assert.True(t, ReachedGoal(decimal.NewFromInt(4000), goal))
	assert.True(t, ReachedGoal(decimal.NewFromInt(3000), goal), "exact boundary counts as reached")
	assert.False(t, ReachedGoal(decimal.NewFromInt(2999), goal))
	assert.False(t, ReachedGoal(decimal.Zero, goal))
}

func TestPendingReachedGoal(t *testing.T) {
	goal := decimal.NewFromInt(200)
	pledged := decimal.NewFromInt(100)

	t.Run("waiting confirmations cover the gap", func(t *testing.T) {
		assert.True(t, PendingReachedGoal(pledged, decimal.NewFromInt(240), goal))
	})

	t.Run("waiting confirmations fall short", func(t *testing.T) {
		assert.False(t, PendingReachedGoal(pledged, decimal.NewFromInt(60), goal))
	})
}

func TestOutcomeOnExpiry(t *testing.T) {
	cases := []struct {
		name     string
		campaign model.CampaignType
		reached  bool
		mayWait  bool
		expected model.ProjectState
	}{
		{"all_or_none reached", model.CampaignAllOrNone, true, false, model.ProjectStateSuccessful},
		{"flexible reached", model.CampaignFlexible, true, false, model.ProjectStateSuccessful},
		{"all_or_none not reached", model.CampaignAllOrNone, false, false, model.ProjectStateFailed},
		{"all_or_none still waiting on confirmations", model.CampaignAllOrNone, false, true, model.ProjectStateWaitingFunds},
		{"flexible keeps what it raised", model.CampaignFlexible, false, false, model.ProjectStateWaitingFunds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OutcomeOnExpiry(tc.campaign, tc.reached, tc.mayWait))
		})
	}
}

func TestEnginePolicyQueries(t *testing.T) {
	engine := New(Settings{})
	p := model.Project{Goal: decimal.NewFromInt(200)}
	l := Ledger{Contributions: []model.Contribution{
		contribution(100, model.ContributionConfirmed),
		contribution(120, model.ContributionWaitingConfirmation),
	}}

	assert.False(t, engine.ReachedGoal(p, l))
	assert.True(t, engine.PendingReachedGoal(p, l))
}
