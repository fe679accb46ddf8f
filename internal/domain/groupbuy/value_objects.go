package groupbuy

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is a per-participant price in a single ISO 4217 currency.
type Money struct {
	amount   decimal.Decimal
	currency currency.Unit
}

// MaxAmount is the exclusive upper bound of a stored amount (NUMERIC(14, 3)).
var MaxAmount = decimal.New(1, 11)

// NewMoney rejects non-positive amounts, amounts at or above MaxAmount and
// amounts with more fractional digits than the currency allows (cents for
// USD, none for JPY, fils for KWD).
func NewMoney(amount decimal.Decimal, code string) (Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return Money{}, ErrInvalidAmount
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return Money{}, ErrAmountTooLarge
	}
	scale := scaleOf(unit)
	if !amount.Equal(amount.Round(scale)) {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: amount, currency: unit}, nil
}

// ReconstructMoney skips validation for values read back from storage.
func ReconstructMoney(amount decimal.Decimal, code string) Money {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.XXX
	}
	return Money{amount: amount, currency: unit}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() currency.Unit { return m.currency }
func (m Money) CurrencyCode() string    { return m.currency.String() }
func (m Money) IsPositive() bool        { return m.amount.IsPositive() }

// String renders "USD 10.00".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.amount.StringFixed(scaleOf(m.currency)))
}

func scaleOf(unit currency.Unit) int32 {
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale) // #nosec G115 -- currency scales are single digit
}
