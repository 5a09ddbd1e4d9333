package coupons

import (
	"math"
	"time"

	"studio-backoffice/internal/models"
)

// Status is the derived display state of a coupon. It is never persisted;
// it is recomputed from the stored fields and the current time on every read.
type Status string

const (
	StatusInactive          Status = "inactive"
	StatusExpired           Status = "expired"
	StatusNotYetValid       Status = "not_yet_valid"
	StatusUsageLimitReached Status = "usage_limit_reached"
	StatusActive            Status = "active"
)

// UsageInfo is the presentation-facing derivation: status plus usage math.
// RemainingUses and UsagePercent are nil for unlimited coupons (no progress
// bar to draw).
type UsageInfo struct {
	Status        Status `json:"status"`
	RemainingUses *int   `json:"remaining_uses,omitempty"`
	UsagePercent  *int   `json:"usage_percent,omitempty"`
}

// DeriveStatus evaluates the status precedence chain, first match wins:
// inactive, expired, not yet valid, usage limit reached, active. An inactive
// coupon that is also expired reports inactive.
func DeriveStatus(c models.Coupon, now time.Time) UsageInfo {
	info := UsageInfo{Status: StatusActive}

	if c.MaxUses != nil {
		remaining := *c.MaxUses - c.UsedCount
		if remaining < 0 {
			remaining = 0
		}
		percent := int(math.Round(float64(c.UsedCount) / float64(*c.MaxUses) * 100))
		if percent > 100 {
			percent = 100
		}
		if percent < 0 {
			percent = 0
		}
		info.RemainingUses = &remaining
		info.UsagePercent = &percent
	}

	switch {
	case !c.IsActive:
		info.Status = StatusInactive
	case c.ValidUntil != nil && now.After(*c.ValidUntil):
		info.Status = StatusExpired
	case now.Before(c.ValidFrom):
		info.Status = StatusNotYetValid
	case c.MaxUses != nil && c.UsedCount >= *c.MaxUses:
		info.Status = StatusUsageLimitReached
	}
	return info
}
