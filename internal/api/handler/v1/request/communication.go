package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SendSMSRequest struct {
	Message     string `json:"message"`
	CampaignIDs []uint `json:"campaign_ids"`
}

func (req *SendSMSRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Message, validation.Required, validation.Length(1, 459)),
		validation.Field(&req.CampaignIDs, validation.Required, validation.Length(1, 0)),
	)
}

type SendEmailRequest struct {
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	CampaignIDs []uint `json:"campaign_ids"`
}

func (req *SendEmailRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Subject, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.CampaignIDs, validation.Required, validation.Length(1, 0)),
	)
}
