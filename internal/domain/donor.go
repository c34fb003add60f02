package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonorFrequency string

const (
	FrequencyUnique    DonorFrequency = "unique"
	FrequencyMonthly   DonorFrequency = "monthly"
	FrequencyQuarterly DonorFrequency = "quarterly"
	FrequencyYearly    DonorFrequency = "yearly"
)

type DonorTag string

const (
	TagVIP     DonorTag = "VIP"
	TagRegular DonorTag = "régulier"
	TagNew     DonorTag = "nouveau"
)

type Donor struct {
	ID           uint            `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	TotalDonated decimal.Decimal `json:"total_donated"`
	LastDonation *time.Time      `json:"last_donation,omitempty"`
	Frequency    DonorFrequency  `json:"frequency"`
	Tag          DonorTag        `json:"tag"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
