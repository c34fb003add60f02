package domain

import "github.com/shopspring/decimal"

// AssociationStats is the dashboard aggregate for one association,
// always computed from the current persisted state.
type AssociationStats struct {
	TotalCampaigns  int             `json:"total_campaigns"`
	ActiveCampaigns int             `json:"active_campaigns"`
	TotalDonors     int             `json:"total_donors"`
	TotalRaised     decimal.Decimal `json:"total_raised"`
	RecentDonations []Donation      `json:"recent_donations"`
}
