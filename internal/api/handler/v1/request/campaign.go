package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCampaignRequest struct {
	AssociationID uint   `json:"association_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Target        string `json:"target"`
	Deadline      string `json:"deadline"` // RFC 3339, optional
	ContactCount  int    `json:"contact_count"`
}

func (req *CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AssociationID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.Target, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&req.ContactCount, validation.Min(0)),
	)
}
