package cashflow

import (
	"github.com/shopspring/decimal"
)

// Quantity is an exact count of shares. Fractional holdings are allowed.
// The zero value is zero shares.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a numeric constant or a decimal.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) String() string { return q.value.String() }

func (q Quantity) Equal(n Quantity) bool       { return q.value.Equal(n.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) GreaterThan(n Quantity) bool { return q.value.GreaterThan(n.value) }
func (q Quantity) Sub(n Quantity) Quantity     { return Quantity{value: q.value.Sub(n.value)} }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
