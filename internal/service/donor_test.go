package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giveplus/giveplus-api/internal/domain"
)

func TestDonorService_CreateDonor(t *testing.T) {
	t.Run("first creation returns created=true and defaults", func(t *testing.T) {
		svc := NewDonorService(newFakeDonorRepo())

		donor, created, err := svc.CreateDonor(context.Background(), domain.Donor{
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie@example.com",
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, domain.FrequencyUnique, donor.Frequency)
		assert.Equal(t, domain.TagNew, donor.Tag)
	})

	t.Run("same email returns the existing donor, created=false", func(t *testing.T) {
		svc := NewDonorService(newFakeDonorRepo())

		first, created, err := svc.CreateDonor(context.Background(), domain.Donor{
			FirstName: "Marie",
			LastName:  "Dupont",
			Email:     "marie@example.com",
		})
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := svc.CreateDonor(context.Background(), domain.Donor{
			FirstName: "Marie-Claire",
			LastName:  "Dupont",
			Email:     "marie@example.com",
		})
		require.NoError(t, err)

		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Marie", second.FirstName)
	})

	t.Run("explicit frequency and tag are kept", func(t *testing.T) {
		svc := NewDonorService(newFakeDonorRepo())

		donor, _, err := svc.CreateDonor(context.Background(), domain.Donor{
			Email:     "fidele@example.com",
			Frequency: domain.FrequencyMonthly,
			Tag:       domain.TagRegular,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.FrequencyMonthly, donor.Frequency)
		assert.Equal(t, domain.TagRegular, donor.Tag)
	})
}
