package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues/cfe/internal/model"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestWindowExpiresAt(t *testing.T) {
	loc := time.UTC
	online := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)

	t.Run("no online date", func(t *testing.T) {
		w := Window{OnlineDate: nil, OnlineDays: 30}
		assert.Nil(t, w.ExpiresAt(loc))
	})

	t.Run("zero days expires end of the online day", func(t *testing.T) {
		w := Window{OnlineDate: &online, OnlineDays: 0}
		expires := w.ExpiresAt(loc)
		require.NotNil(t, expires)
		assert.Equal(t, time.Date(2026, 3, 10, 23, 59, 59, 999999999, loc), *expires)
	})

	t.Run("positive days", func(t *testing.T) {
		w := Window{OnlineDate: &online, OnlineDays: 5}
		expires := w.ExpiresAt(loc)
		require.NotNil(t, expires)
		assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999999999, loc), *expires)
	})

	t.Run("negative days closes before the online day", func(t *testing.T) {
		w := Window{OnlineDate: &online, OnlineDays: -2}
		expires := w.ExpiresAt(loc)
		require.NotNil(t, expires)
		assert.Equal(t, time.Date(2026, 3, 8, 23, 59, 59, 999999999, loc), *expires)
	})
}

func TestWindowExpired(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)

	t.Run("never expired without online date", func(t *testing.T) {
		w := Window{OnlineDate: nil, OnlineDays: -100}
		assert.False(t, w.Expired(now, loc))
	})

	t.Run("live through the whole last day", func(t *testing.T) {
		w := Window{OnlineDate: &now, OnlineDays: 0}
		assert.False(t, w.Expired(now, loc))
		assert.False(t, w.Expired(time.Date(2026, 3, 10, 23, 59, 59, 999999999, loc), loc))
		assert.True(t, w.Expired(time.Date(2026, 3, 11, 0, 0, 0, 0, loc), loc))
	})

	t.Run("expired once the window passed", func(t *testing.T) {
		online := now.AddDate(0, 0, -3)
		w := Window{OnlineDate: &online, OnlineDays: 1}
		assert.True(t, w.Expired(now, loc))
	})
}

func TestWindowExpiring(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)

	cases := []struct {
		name     string
		days     int
		expiring bool
	}{
		{"expires within the lookahead", 13, true},
		{"already expired", -1, false},
		{"expires after the lookahead", 15, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Window{OnlineDate: &now, OnlineDays: tc.days}
			assert.Equal(t, tc.expiring, w.Expiring(now, loc, DefaultExpiringWindow))
		})
	}

	t.Run("no online date", func(t *testing.T) {
		w := Window{OnlineDate: nil, OnlineDays: 3}
		assert.False(t, w.Expiring(now, loc, DefaultExpiringWindow))
	})
}

func TestWindowRecent(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("went online four days ago", func(t *testing.T) {
		w := Window{OnlineDate: datePtr(now.AddDate(0, 0, -4))}
		assert.True(t, w.Recent(now, DefaultRecentWindow))
	})

	t.Run("went online fifteen days ago", func(t *testing.T) {
		w := Window{OnlineDate: datePtr(now.AddDate(0, 0, -15))}
		assert.False(t, w.Recent(now, DefaultRecentWindow))
	})

	t.Run("no online date", func(t *testing.T) {
		w := Window{}
		assert.False(t, w.Recent(now, DefaultRecentWindow))
	})
}

func TestEngineWindowQueries(t *testing.T) {
	loc := time.UTC
	engine := New(Settings{Location: loc})
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)

	p := model.Project{
		State:      model.ProjectStateOnline,
		OnlineDate: datePtr(now.AddDate(0, 0, -4)),
		OnlineDays: 10,
	}

	expires := engine.ExpiresAt(p)
	require.NotNil(t, expires)
	assert.Equal(t, time.Date(2026, 3, 16, 23, 59, 59, 999999999, loc), *expires)
	assert.False(t, engine.Expired(p, now))
	assert.True(t, engine.Expiring(p, now))
	assert.True(t, engine.Recent(p, now))
}
