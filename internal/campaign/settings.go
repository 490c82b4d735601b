// Package campaign implements the funding and lifecycle rules of a
// crowdfunding project: time-window arithmetic, contribution aggregation,
// campaign-type policy and payout reconciliation.
//
// Everything in this package is a pure function over already-loaded
// entities. The package never touches the database and never mutates its
// inputs, so the same rules back the read paths (progress bars), the write
// paths (the scheduler sweep) and financial reconciliation without drift.
package campaign

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default policy constants, used for any zero field in Settings.
const (
	DefaultExpiringWindow = 14 * 24 * time.Hour
	DefaultRecentWindow   = 7 * 24 * time.Hour
	DefaultWaitWindow     = 7 * 24 * time.Hour
)

// DefaultPlatformFee is the platform cut applied when computing the net
// amount owed to a project owner.
var DefaultPlatformFee = decimal.NewFromFloat(0.10)

// Settings 引擎策略参数
//
// Settings is loaded once at startup by the boundary layer and injected
// here; the engine never reads configuration on its own.
type Settings struct {
	// Location is the time zone used for end-of-day expiration rounding.
	Location *time.Location

	// ExpiringWindow is the lookahead used by Expiring for near-deadline
	// notifications.
	ExpiringWindow time.Duration

	// RecentWindow is the trailing window used by Recent for "new
	// campaigns" listings.
	RecentWindow time.Duration

	// WaitWindow is how long a waiting_confirmation contribution may
	// legitimately stay unconfirmed.
	WaitWindow time.Duration

	// PlatformFee is the platform fee rate, e.g. 0.10.
	PlatformFee decimal.Decimal
}

// Engine 众筹生命周期引擎
type Engine struct {
	settings Settings
}

// New creates an engine, filling any zero setting with its default.
func New(settings Settings) *Engine {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	if settings.ExpiringWindow == 0 {
		settings.ExpiringWindow = DefaultExpiringWindow
	}
	if settings.RecentWindow == 0 {
		settings.RecentWindow = DefaultRecentWindow
	}
	if settings.WaitWindow == 0 {
		settings.WaitWindow = DefaultWaitWindow
	}
	if settings.PlatformFee.IsZero() {
		settings.PlatformFee = DefaultPlatformFee
	}
	return &Engine{settings: settings}
}

// Settings returns the policy constants the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}
