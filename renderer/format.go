package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/fundamentals"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the stock currency is unknown.
const DefaultCurrency = "USD"

// Formatter turns numbers into display strings. Absent numbers are "-".
type Formatter struct {
	// Currency is the ISO code of the stock's reporting currency.
	Currency string
}

// currency returns the go-money currency, never nil.
func (f Formatter) currency() money.Currency {
	code := f.Currency
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// format prints d with the currency conventions, using places decimals.
func (f Formatter) format(d decimal.Decimal, places int, withSymbol bool) string {
	cur := f.currency()
	base := cur.Formatter()
	template := base.Template
	if !withSymbol {
		template = "1"
	}
	ft := money.NewFormatter(places, base.Decimal, base.Thousand, base.Grapheme, template)
	return ft.Format(d.Shift(int32(places)).Round(0).IntPart())
}

// Amount prints a statement amount, without decimals: "$1,234".
func (f Formatter) Amount(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	return f.format(n.Decimal(), 0, true)
}

// PerShare prints a per share amount with two decimals: "$12.30".
func (f Formatter) PerShare(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	return f.format(n.Decimal(), 2, true)
}

// Shares prints a number of shares with thousands separators.
func (f Formatter) Shares(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	return f.format(n.Decimal(), 0, false)
}

// Percent prints a value in percent with two decimals: "12.50%".
func (f Formatter) Percent(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	return n.Decimal().StringFixed(2) + "%"
}

// Ratio prints a multiple with two decimals.
func (f Formatter) Ratio(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	return n.Decimal().StringFixed(2)
}

// Value prints n according to the unit of m.
func (f Formatter) Value(m fundamentals.Metric, n fundamentals.Number) string {
	switch m.Unit() {
	case fundamentals.Amount:
		return f.Amount(n)
	case fundamentals.PerShareAmount:
		return f.PerShare(n)
	case fundamentals.Shares:
		return f.Shares(n)
	case fundamentals.PercentUnit:
		return f.Percent(n)
	default:
		return f.Ratio(n)
	}
}

// Change prints a percentage change, or "-" when unavailable.
func (f Formatter) Change(c fundamentals.PercentageChange) string { return c.String() }

// SignedPercent prints a percent change with its sign: "+12.50%".
func (f Formatter) SignedPercent(n fundamentals.Number) string {
	if !n.IsSet() {
		return "-"
	}
	if n.IsPositive() {
		return "+" + f.Percent(n)
	}
	return f.Percent(n)
}

// Range prints a value range as "min to max", "-" when empty.
func (f Formatter) Range(r fundamentals.ValueRange, format func(fundamentals.Number) string) string {
	if r.IsEmpty() {
		return "-"
	}
	return format(r.Min) + " to " + format(r.Max)
}
