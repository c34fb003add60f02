package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationCompleted DonationStatus = "completed"
	DonationPending   DonationStatus = "pending"
	DonationFailed    DonationStatus = "failed"
)

// Donation is an immutable contribution record. There is no update or
// delete path once a donation has been written.
type Donation struct {
	ID          uint            `json:"id"`
	CampaignID  uint            `json:"campaign_id"`
	DonorID     uint            `json:"donor_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      DonationStatus  `json:"status"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (d Donation) IsValid() bool {
	if d.CampaignID == 0 || d.DonorID == 0 {
		return false
	}
	if !d.Amount.IsPositive() {
		return false
	}

	return true
}
