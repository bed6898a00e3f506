package fundamentals

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
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

// Number is an optional decimal value.
//
// The zero value is absent: the figure has not been entered yet. An absent
// Number is not the same as an entered zero, but arithmetic treats it as 0.
type Number struct {
	value decimal.Decimal
	set   bool
}

// Absent is the Number that holds no value.
var Absent Number

// N returns a present Number.
func N[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Number {
	return Number{value: newDecimal(value), set: true}
}

// ParseNumber parses a decimal string. Empty strings and "-" are absent.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Absent, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Absent, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Number{value: d, set: true}, nil
}

var hundred = N(100)

func (n Number) IsSet() bool { return n.set }

// IsZero is true when n is absent or equal to 0.
func (n Number) IsZero() bool              { return n.value.IsZero() }
func (n Number) IsPositive() bool          { return n.value.IsPositive() }
func (n Number) IsNegative() bool          { return n.value.IsNegative() }
func (n Number) Decimal() decimal.Decimal  { return n.value }
func (n Number) Float() float64            { return n.value.InexactFloat64() }
func (n Number) LessThan(m Number) bool    { return n.value.LessThan(m.value) }
func (n Number) GreaterThan(m Number) bool { return n.value.GreaterThan(m.value) }

// Equal reports whether both numbers are absent, or both present with the same value.
func (n Number) Equal(m Number) bool { return n.set == m.set && n.value.Equal(m.value) }

// Or returns n if present, def otherwise.
func (n Number) Or(def Number) Number {
	if n.set {
		return n
	}
	return def
}

// binary operators. Absent operands count as 0, the result is always present.
func (n Number) Add(m Number) Number { return Number{value: n.value.Add(m.value), set: true} }
func (n Number) Sub(m Number) Number { return Number{value: n.value.Sub(m.value), set: true} }
func (n Number) Mul(m Number) Number { return Number{value: n.value.Mul(m.value), set: true} }
func (n Number) Neg() Number         { return Number{value: n.value.Neg(), set: true} }

// Round returns n rounded to places decimals, absent stays absent.
func (n Number) Round(places int32) Number {
	if !n.set {
		return n
	}
	return Number{value: n.value.Round(places), set: true}
}

// String returns the decimal representation, or "" when absent.
func (n Number) String() string {
	if !n.set {
		return ""
	}
	return n.value.String()
}

// div is the guarded division used by every ratio: a zero or absent divisor yields 0.
func div(a, b Number) Number {
	if b.value.IsZero() {
		return N(0)
	}
	return Number{value: a.value.Div(b.value), set: true}
}

// sum adds all numbers, absent ones counting as 0.
func sum(numbers ...Number) Number {
	total := N(0)
	for _, n := range numbers {
		total = total.Add(n)
	}
	return total
}

// MarshalJSON writes a JSON number, or null when absent.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

// UnmarshalJSON accepts numbers, quoted numbers, null and "" (absent).
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*n = Absent
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = Number{value: d, set: true}
	return nil
}
