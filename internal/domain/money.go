package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrAmountOutOfRange = errors.New("amount does not fit its column")

// validateMoney checks d against a DECIMAL(digits, places) column
func validateMoney(field string, d decimal.Decimal, digits, places int32) error {
	if !d.Equal(d.Round(places)) {
		return fmt.Errorf("%s has more than %d decimal places: %w", field, places, ErrAmountOutOfRange)
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, digits-places)) {
		return fmt.Errorf("%s exceeds %d digits: %w", field, digits, ErrAmountOutOfRange)
	}
	return nil
}
