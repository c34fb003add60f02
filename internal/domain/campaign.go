package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignPaused    CampaignStatus = "paused"
	CampaignDraft     CampaignStatus = "draft"
)

type Campaign struct {
	ID            uint            `json:"id"`
	AssociationID uint            `json:"association_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Target        decimal.Decimal `json:"target"`
	Raised        decimal.Decimal `json:"raised"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Status        CampaignStatus  `json:"status"`
	ContactCount  int             `json:"contact_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CampaignProgress is the read-only view returned by the progress query.
// The stored raised amount is never clamped; ProgressPercent is, for display.
type CampaignProgress struct {
	CampaignID      uint            `json:"campaign_id"`
	Raised          decimal.Decimal `json:"raised"`
	Target          decimal.Decimal `json:"target"`
	ProgressPercent int             `json:"progress_percent"`
	RemainingDays   *int            `json:"remaining_days,omitempty"`
}

// ProgressPercent reports raised/target rounded to the nearest percent,
// clamped to [0, 100].
func (c Campaign) ProgressPercent() int {
	if c.Target.IsZero() {
		return 0
	}

	ratio, _ := c.Raised.Div(c.Target).Mul(decimal.NewFromInt(100)).Round(0).Float64()
	percent := int(ratio)
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return percent
}

// RemainingDays reports the number of whole days until the deadline,
// rounding partial days up. A past deadline reports 0, never a negative
// count. Returns nil when no deadline is set.
func (c Campaign) RemainingDays(now time.Time) *int {
	if c.Deadline == nil {
		return nil
	}

	days := int(math.Ceil(c.Deadline.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}

	return &days
}
