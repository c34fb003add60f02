package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errMissingDonor = errors.New("either donor_id or donor identity (first_name, last_name, email) is required")

type CreateDonationRequest struct {
	CampaignID  uint   `json:"campaign_id"`
	DonorID     uint   `json:"donor_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`

	// Donor identity, used only when DonorID is zero.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (req *CreateDonationRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CampaignID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Amount, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if req.DonorID == 0 {
		err = validation.ValidateStruct(
			req,
			validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
			validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
			validation.Field(&req.Email, validation.Required, is.Email),
		)
		if err != nil {
			return errors.Join(errMissingDonor, err)
		}
	}

	return nil
}
