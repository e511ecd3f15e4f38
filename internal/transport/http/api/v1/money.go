package apiv1

import (
	"github.com/shopspring/decimal"
)

// Money is a decimal amount encoded as a JSON number with two decimals.
// Both numbers and numeric strings are accepted on input.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money { return Money{Decimal: d} }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}
