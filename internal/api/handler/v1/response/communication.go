package response

import "github.com/shopspring/decimal"

type BulkSendResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Recipients int             `json:"recipients"`
	Cost       decimal.Decimal `json:"cost"`
}
