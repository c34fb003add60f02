package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDonationRequest_Validate(t *testing.T) {
	base := CreateDonationRequest{
		CampaignID: 1,
		DonorID:    2,
		Amount:     "25.00",
	}

	t.Run("valid with donor ID", func(t *testing.T) {
		req := base

		assert.NoError(t, req.Validate())
	})

	t.Run("valid with donor identity", func(t *testing.T) {
		req := base
		req.DonorID = 0
		req.FirstName = "Marie"
		req.LastName = "Dupont"
		req.Email = "marie@example.com"

		assert.NoError(t, req.Validate())
	})

	t.Run("zero amount", func(t *testing.T) {
		req := base
		req.Amount = "0"

		assert.Error(t, req.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		req := base
		req.Amount = "-10.00"

		assert.Error(t, req.Validate())
	})

	t.Run("non numeric amount", func(t *testing.T) {
		req := base
		req.Amount = "ten euros"

		assert.Error(t, req.Validate())
	})

	t.Run("missing campaign", func(t *testing.T) {
		req := base
		req.CampaignID = 0

		assert.Error(t, req.Validate())
	})

	t.Run("no donor ID and no identity", func(t *testing.T) {
		req := base
		req.DonorID = 0

		err := req.Validate()
		assert.ErrorIs(t, err, errMissingDonor)
	})

	t.Run("identity missing email", func(t *testing.T) {
		req := base
		req.DonorID = 0
		req.FirstName = "Marie"
		req.LastName = "Dupont"

		assert.Error(t, req.Validate())
	})
}

func TestCreateCampaignRequest_Validate(t *testing.T) {
	base := CreateCampaignRequest{
		AssociationID: 1,
		Title:         "Rentrée solidaire",
		Target:        "1000.00",
	}

	t.Run("valid", func(t *testing.T) {
		req := base

		assert.NoError(t, req.Validate())
	})

	t.Run("zero target", func(t *testing.T) {
		req := base
		req.Target = "0.00"

		assert.Error(t, req.Validate())
	})

	t.Run("negative target", func(t *testing.T) {
		req := base
		req.Target = "-100"

		assert.Error(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := base
		req.Title = ""

		assert.Error(t, req.Validate())
	})
}

func TestSignupRequest_Validate(t *testing.T) {
	base := SignupRequest{
		Email:         "admin@asso.org",
		Password:      "s3curepassword",
		AssociationID: 1,
	}

	t.Run("valid", func(t *testing.T) {
		req := base

		assert.NoError(t, req.Validate())
	})

	t.Run("password without digit", func(t *testing.T) {
		req := base
		req.Password = "justletters"

		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password too short", func(t *testing.T) {
		req := base
		req.Password = "a1b2"

		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("bad email", func(t *testing.T) {
		req := base
		req.Email = "not-an-email"

		assert.Error(t, req.Validate())
	})
}
