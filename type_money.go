package fundora

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are expressed in when none is given.
const DefaultCurrency = money.INR

// number lists the types that can be turned into a decimal.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any numeric value.
func M[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// INR is a shortcut for an amount in Indian rupees.
func INR[T number](value T) Money { return M(value, money.INR) }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with the currency grapheme and all its
// fractional digits, e.g. "₹20,000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Whole returns the amount rounded to whole units and formatted without
// fractional digits, e.g. "₹20,000".
func (m Money) Whole() string {
	cur := m.currency()
	f := cur.Formatter()
	return money.NewFormatter(0, f.Decimal, f.Thousand, f.Grapheme, f.Template).Format(m.value.Round(0).IntPart())
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) Mul(d decimal.Decimal) Money { return Money{value: m.value.Mul(d), cur: m.cur} }

// Round returns the money rounded to whole units, half away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(0), cur: m.cur} }

// AsFloat returns an inexact float value, for ratios only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the amount as a plain JSON number, rounded to the
// currency's fraction.
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return json.Marshal(json.Number(rounded.String()))
}
