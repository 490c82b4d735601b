package campaign

import (
	"time"

	"github.com/blues/cfe/internal/model"
)

// Window 项目筹款时间窗口
//
// OnlineDays may be zero (the campaign expires at the end of the day it
// went online) or negative (the campaign was force-closed before its
// nominal window).
type Window struct {
	OnlineDate *time.Time
	OnlineDays int
}

// ProjectWindow builds the time window of a project.
func ProjectWindow(p model.Project) Window {
	return Window{OnlineDate: p.OnlineDate, OnlineDays: p.OnlineDays}
}

// ExpiresAt returns the instant the campaign stops accepting contributions:
// the last instant of the calendar day OnlineDays after the online date, in
// loc. A campaign scheduled for N days stays live through the whole of its
// last day regardless of the hour it went online.
//
// Returns nil when there is no online date; callers treat nil as
// never-expired.
func (w Window) ExpiresAt(loc *time.Location) *time.Time {
	if w.OnlineDate == nil {
		return nil
	}
	day := w.OnlineDate.In(loc).AddDate(0, 0, w.OnlineDays)
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return &end
}

// Expired reports whether the expiration instant has passed.
func (w Window) Expired(now time.Time, loc *time.Location) bool {
	expires := w.ExpiresAt(loc)
	return expires != nil && expires.Before(now)
}

// Expiring reports whether the campaign is still live but expires within
// the lookahead window.
func (w Window) Expiring(now time.Time, loc *time.Location, lookahead time.Duration) bool {
	expires := w.ExpiresAt(loc)
	if expires == nil || expires.Before(now) {
		return false
	}
	return expires.Sub(now) <= lookahead
}

// Recent reports whether the campaign went online within the trailing
// window. Independent of expiration.
func (w Window) Recent(now time.Time, trailing time.Duration) bool {
	if w.OnlineDate == nil {
		return false
	}
	return now.Sub(*w.OnlineDate) <= trailing
}

// ExpiresAt 项目截止时间
func (e *Engine) ExpiresAt(p model.Project) *time.Time {
	return ProjectWindow(p).ExpiresAt(e.settings.Location)
}

// Expired 项目是否已截止
func (e *Engine) Expired(p model.Project, now time.Time) bool {
	return ProjectWindow(p).Expired(now, e.settings.Location)
}

// Expiring 项目是否临近截止
func (e *Engine) Expiring(p model.Project, now time.Time) bool {
	return ProjectWindow(p).Expiring(now, e.settings.Location, e.settings.ExpiringWindow)
}

// Recent 项目是否新近上线
func (e *Engine) Recent(p model.Project, now time.Time) bool {
	return ProjectWindow(p).Recent(now, e.settings.RecentWindow)
}
