package campaign

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blues/cfe/internal/model"
)

func contribution(value int64, state model.ContributionState) model.Contribution {
	return model.Contribution{Value: decimal.NewFromInt(value), State: state}
}

func TestLedgerPledged(t *testing.T) {
	t.Run("no rollup sums confirmed directly", func(t *testing.T) {
		l := Ledger{Contributions: []model.Contribution{
			contribution(10, model.ContributionConfirmed),
			contribution(25, model.ContributionConfirmed),
			contribution(5, model.ContributionPending),
			contribution(7, model.ContributionRefunded),
		}}
		assert.True(t, l.Pledged().Equal(decimal.NewFromInt(35)))
	})

	t.Run("reads through the rollup when present", func(t *testing.T) {
		l := Ledger{
			Contributions: []model.Contribution{contribution(999, model.ContributionConfirmed)},
			Total:         &model.ProjectTotal{Pledged: decimal.NewFromInt(10)},
		}
		assert.True(t, l.Pledged().Equal(decimal.NewFromInt(10)))
	})

	t.Run("empty ledger is zero", func(t *testing.T) {
		assert.True(t, Ledger{}.Pledged().IsZero())
	})
}

func TestLedgerPledgedAndWaiting(t *testing.T) {
	l := Ledger{Contributions: []model.Contribution{
		contribution(10, model.ContributionConfirmed),
		contribution(10, model.ContributionWaitingConfirmation),
		contribution(100, model.ContributionRefunded),
		contribution(1000, model.ContributionPending),
	}}
	assert.True(t, l.PledgedAndWaiting().Equal(decimal.NewFromInt(20)))

	// direct summation, never the rollup
	l.Total = &model.ProjectTotal{Pledged: decimal.NewFromInt(5000)}
	assert.True(t, l.PledgedAndWaiting().Equal(decimal.NewFromInt(20)))
}

func TestLedgerRollupFallbacks(t *testing.T) {
	t.Run("absent rollup reads zero", func(t *testing.T) {
		l := Ledger{}
		assert.Equal(t, int64(0), l.TotalContributions())
		assert.True(t, l.TotalPaymentServiceFee().IsZero())
	})

	t.Run("present rollup passes through", func(t *testing.T) {
		l := Ledger{Total: &model.ProjectTotal{
			TotalContributions:     3,
			TotalPaymentServiceFee: decimal.NewFromInt(4),
		}}
		assert.Equal(t, int64(3), l.TotalContributions())
		assert.True(t, l.TotalPaymentServiceFee().Equal(decimal.NewFromInt(4)))
	})
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name     string
		goal     int64
		pledged  int64
		expected int
	}{
		{"goal and pledged zero", 0, 0, 0},
		{"goal zero", 0, 10, 0},
		{"pledged zero", 10, 0, 0},
		{"negative goal", -10, 10, 0},
		{"exactly funded", 10, 10, 100},
		{"overfunded has no clamp", 10, 20, 200},
		{"rounds down", 3, 1, 33},
		{"rounds up", 3, 2, 67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(decimal.NewFromInt(tc.goal), decimal.NewFromInt(tc.pledged))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEngineProgressIdempotent(t *testing.T) {
	engine := New(Settings{})
	p := model.Project{Goal: decimal.NewFromInt(200)}
	l := Ledger{Contributions: []model.Contribution{
		contribution(50, model.ContributionConfirmed),
	}}
	first := engine.Progress(p, l)
	assert.Equal(t, 25, first)
	assert.Equal(t, first, engine.Progress(p, l))
}
