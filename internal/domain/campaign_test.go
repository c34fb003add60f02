package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCampaign_ProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		raised string
		target string
		want   int
	}{
		{
			name:   "35 percent",
			raised: "350.50",
			target: "1000.00",
			want:   35,
		},
		{
			name:   "rounds to nearest",
			raised: "335.00",
			target: "1000.00",
			want:   34,
		},
		{
			name:   "over target is clamped for display",
			raised: "1500.00",
			target: "1000.00",
			want:   100,
		},
		{
			name:   "nothing raised",
			raised: "0",
			target: "1000.00",
			want:   0,
		},
		{
			name:   "zero target",
			raised: "10.00",
			target: "0",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := Campaign{
				Raised: decimal.RequireFromString(tt.raised),
				Target: decimal.RequireFromString(tt.target),
			}

			assert.Equal(t, tt.want, campaign.ProgressPercent())
		})
	}
}

func TestCampaign_RemainingDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no deadline", func(t *testing.T) {
		campaign := Campaign{}

		assert.Nil(t, campaign.RemainingDays(now))
	})

	t.Run("partial days round up", func(t *testing.T) {
		deadline := now.Add(36 * time.Hour)
		campaign := Campaign{Deadline: &deadline}

		got := campaign.RemainingDays(now)
		assert.NotNil(t, got)
		assert.Equal(t, 2, *got)
	})

	t.Run("deadline yesterday reports zero", func(t *testing.T) {
		deadline := now.Add(-24 * time.Hour)
		campaign := Campaign{Deadline: &deadline}

		got := campaign.RemainingDays(now)
		assert.NotNil(t, got)
		assert.Equal(t, 0, *got)
	})
}

func TestDonation_IsValid(t *testing.T) {
	valid := Donation{CampaignID: 1, DonorID: 2, Amount: decimal.RequireFromString("25.00")}
	assert.True(t, valid.IsValid())

	zeroAmount := Donation{CampaignID: 1, DonorID: 2, Amount: decimal.Zero}
	assert.False(t, zeroAmount.IsValid())

	negative := Donation{CampaignID: 1, DonorID: 2, Amount: decimal.RequireFromString("-5")}
	assert.False(t, negative.IsValid())

	noCampaign := Donation{DonorID: 2, Amount: decimal.RequireFromString("5")}
	assert.False(t, noCampaign.IsValid())
}
