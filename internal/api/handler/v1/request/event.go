package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	AssociationID   uint   `json:"association_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"` // RFC 3339
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
	Price           string `json:"price"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.AssociationID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.MaxParticipants, validation.Min(0)),
		validation.Field(&req.Price, validation.By(optionalPositiveDecimal)),
	)
}

func optionalPositiveDecimal(value interface{}) error {
	s, ok := value.(string)
	if !ok || s == "" {
		return nil
	}

	return positiveDecimal(value)
}

type RegisterParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (req *RegisterParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}
