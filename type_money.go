package cashflow

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func init() {
	// Amounts are persisted as plain JSON numbers, like the original documents.
	decimal.MarshalJSONWithoutQuotes = true
}

// reportingCurrency is the ISO code used to format every amount. The game
// tracks a single currency; documents store bare numbers.
var reportingCurrency = "SEK"

// SetCurrency changes the currency used to format amounts.
func SetCurrency(code string) {
	if code != "" {
		reportingCurrency = code
	}
}

// Money is an exact monetary amount in the reporting currency.
// The zero value is zero money and is ready to use.
type Money struct {
	value decimal.Decimal
}

// M creates a Money from a numeric constant or a decimal.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	}
	return decimal.Zero
}

// currency returns the full reporting currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, reportingCurrency).Currency()
}

// String formats the amount with the reporting currency's symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String but with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }

// orZero clamps negative amounts to zero. Several inputs (dividends, monthly
// payments) must be non-negative.
func (m Money) orZero() Money {
	if m.value.IsNegative() {
		return Money{}
	}
	return m
}

// ceilTo rounds the amount up to the nearest multiple of step.
func (m Money) ceilTo(step int64) Money {
	s := decimal.NewFromInt(step)
	return Money{value: m.value.Div(s).Ceil().Mul(s)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// MarshalYAML and UnmarshalYAML let Money appear in the builtin profession
// catalog as bare numbers.
func (m Money) MarshalYAML() (any, error) {
	return m.value.String(), nil
}

func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" {
		m.value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", node.Value, err)
	}
	m.value = d
	return nil
}
