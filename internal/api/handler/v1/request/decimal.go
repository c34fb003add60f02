package request

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errNotDecimal  = errors.New("must be a decimal number")
	errNotPositive = errors.New("must be greater than zero")
)

// Monetary amounts travel as strings so nothing ever round-trips through a
// float.
func positiveDecimal(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errNotDecimal
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return errNotDecimal
	}
	if !d.IsPositive() {
		return errNotPositive
	}

	return nil
}
