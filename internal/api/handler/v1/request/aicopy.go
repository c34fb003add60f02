package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type GenerateCopyRequest struct {
	Content string `json:"content"`
	Tone    string `json:"tone"`
}

func (req *GenerateCopyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Content, validation.Required, validation.Length(1, 1000)),
		validation.Field(&req.Tone, validation.In("inspirant", "urgent", "formel")),
	)
}
