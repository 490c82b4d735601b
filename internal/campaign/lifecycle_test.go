package campaign

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blues/cfe/internal/model"
)

func testEngine() *Engine {
	return New(Settings{Location: time.UTC})
}

func TestEvaluateExternalStatesAreAbsorbing(t *testing.T) {
	engine := testEngine()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	expired := datePtr(now.AddDate(0, 0, -30))

	for _, state := range []model.ProjectState{
		model.ProjectStateDraft,
		model.ProjectStateRejected,
		model.ProjectStateDeleted,
		model.ProjectStateSuccessful,
		model.ProjectStateFailed,
	} {
		p := model.Project{State: state, OnlineDate: expired, OnlineDays: 1}
		assert.Equal(t, state, engine.Evaluate(p, Ledger{}, now), "state %s", state)
	}
}

func TestEvaluateTimeTier(t *testing.T) {
	engine := testEngine()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no online date keeps the stored state", func(t *testing.T) {
		p := model.Project{State: model.ProjectStateOnline}
		assert.Equal(t, model.ProjectStateOnline, engine.Evaluate(p, Ledger{}, now))
	})

	t.Run("future online date is soon", func(t *testing.T) {
		p := model.Project{
			State:      model.ProjectStateSoon,
			OnlineDate: datePtr(now.AddDate(0, 0, 2)),
			OnlineDays: 30,
		}
		assert.Equal(t, model.ProjectStateSoon, engine.Evaluate(p, Ledger{}, now))
	})

	t.Run("inside the window is online", func(t *testing.T) {
		p := model.Project{
			State:      model.ProjectStateOnline,
			OnlineDate: datePtr(now.AddDate(0, 0, -3)),
			OnlineDays: 30,
		}
		assert.Equal(t, model.ProjectStateOnline, engine.Evaluate(p, Ledger{}, now))
	})
}

func TestEvaluateExpiry(t *testing.T) {
	engine := testEngine()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	expiredProject := func(campaign model.CampaignType, goal int64) model.Project {
		return model.Project{
			State:        model.ProjectStateOnline,
			CampaignType: campaign,
			Goal:         decimal.NewFromInt(goal),
			OnlineDate:   datePtr(now.AddDate(0, 0, -30)),
			OnlineDays:   10,
		}
	}
	staleWaiting := func(value int64) model.Contribution {
		c := contribution(value, model.ContributionWaitingConfirmation)
		c.CreatedAt = now.AddDate(0, 0, -20)
		return c
	}

	t.Run("goal reached is successful", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		l := Ledger{Contributions: []model.Contribution{contribution(150, model.ContributionConfirmed)}}
		assert.Equal(t, model.ProjectStateSuccessful, engine.Evaluate(p, l, now))
	})

	t.Run("all_or_none short of goal fails", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		l := Ledger{Contributions: []model.Contribution{contribution(40, model.ContributionConfirmed)}}
		assert.Equal(t, model.ProjectStateFailed, engine.Evaluate(p, l, now))
	})

	t.Run("flexible short of goal waits for funds", func(t *testing.T) {
		p := expiredProject(model.CampaignFlexible, 100)
		l := Ledger{Contributions: []model.Contribution{contribution(40, model.ContributionConfirmed)}}
		assert.Equal(t, model.ProjectStateWaitingFunds, engine.Evaluate(p, l, now))
	})

	t.Run("pending confirmations that reach the goal keep it waiting", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		l := Ledger{Contributions: []model.Contribution{
			contribution(40, model.ContributionConfirmed),
			staleWaiting(80),
		}}
		assert.Equal(t, model.ProjectStateWaitingFunds, engine.Evaluate(p, l, now))
	})

	t.Run("fresh waiting confirmation keeps it waiting even below goal", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		fresh := contribution(5, model.ContributionWaitingConfirmation)
		fresh.CreatedAt = now.AddDate(0, 0, -2)
		l := Ledger{Contributions: []model.Contribution{
			contribution(40, model.ContributionConfirmed),
			fresh,
		}}
		assert.Equal(t, model.ProjectStateWaitingFunds, engine.Evaluate(p, l, now))
	})

	t.Run("stale short waiting confirmation fails", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		l := Ledger{Contributions: []model.Contribution{
			contribution(40, model.ContributionConfirmed),
			staleWaiting(10),
		}}
		assert.Equal(t, model.ProjectStateFailed, engine.Evaluate(p, l, now))
	})

	t.Run("evaluation is idempotent", func(t *testing.T) {
		p := expiredProject(model.CampaignAllOrNone, 100)
		l := Ledger{Contributions: []model.Contribution{contribution(150, model.ContributionConfirmed)}}
		first := engine.Evaluate(p, l, now)
		assert.Equal(t, first, engine.Evaluate(p, l, now))
	})
}

func TestInTimeToWait(t *testing.T) {
	engine := testEngine()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	waiting := func(age time.Duration) model.Contribution {
		c := contribution(10, model.ContributionWaitingConfirmation)
		c.CreatedAt = now.Add(-age)
		return c
	}

	assert.True(t, engine.InTimeToWait([]model.Contribution{waiting(3 * 24 * time.Hour)}, now))
	assert.False(t, engine.InTimeToWait([]model.Contribution{waiting(8 * 24 * time.Hour)}, now))
	assert.False(t, engine.InTimeToWait(nil, now))

	confirmed := contribution(10, model.ContributionConfirmed)
	confirmed.CreatedAt = now
	assert.False(t, engine.InTimeToWait([]model.Contribution{confirmed}, now))
}

func TestVisibleProjects(t *testing.T) {
	var projects []model.Project
	for i, state := range []model.ProjectState{
		model.ProjectStateDraft,
		model.ProjectStateOnline,
		model.ProjectStateRejected,
		model.ProjectStateSuccessful,
		model.ProjectStateWaitingFunds,
		model.ProjectStateDeleted,
		model.ProjectStateFailed,
		model.ProjectStateSoon,
	} {
		projects = append(projects, model.Project{ID: uint(i + 1), State: state})
	}

	visible := VisibleProjects(projects)

	states := make([]model.ProjectState, 0, len(visible))
	for _, p := range visible {
		states = append(states, p.State)
	}
	assert.Equal(t, []model.ProjectState{
		model.ProjectStateOnline,
		model.ProjectStateSuccessful,
		model.ProjectStateWaitingFunds,
		model.ProjectStateFailed,
		model.ProjectStateSoon,
	}, states, "filters exactly draft, rejected and deleted, keeping order")
}

func TestNotificationType(t *testing.T) {
	t.Run("without channel", func(t *testing.T) {
		assert.Equal(t, "project_success", NotificationType(model.Project{}, "project_success"))
	})

	t.Run("with channel", func(t *testing.T) {
		channelID := int64(7)
		p := model.Project{ChannelID: &channelID}
		assert.Equal(t, "project_success_channel", NotificationType(p, "project_success"))
	})
}
