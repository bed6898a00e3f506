package fundamentals

import (
	"math"
	"slices"
)

// ChangeKind tells how a PercentageChange was computed.
type ChangeKind int

const (
	// Unavailable means there is not enough data for a change.
	Unavailable ChangeKind = iota
	// YearOverYear is the change from the previous year.
	YearOverYear
	// CAGR is the compound annual growth rate from the earliest to the latest year.
	// It is only computed for the earliest year of a series.
	CAGR
)

func (k ChangeKind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case YearOverYear:
		return "yoy"
	case CAGR:
		return "cagr"
	default:
		return "unknown"
	}
}

// PercentageChange is the change of a metric for a given year.
type PercentageChange struct {
	Kind  ChangeKind
	Value Percent
}

// Available reports whether a change could be computed.
func (c PercentageChange) Available() bool { return c.Kind != Unavailable }

// String returns "CAGR = +41.4%" for CAGR, "+50.0%" for year over year changes and "-" otherwise.
func (c PercentageChange) String() string {
	switch c.Kind {
	case CAGR:
		return "CAGR = " + c.Value.SignedString()
	case YearOverYear:
		return c.Value.SignedString()
	default:
		return "-"
	}
}

// exists follows the entry form convention: a blank or zero figure carries no information.
func exists(n Number) bool { return n.IsSet() && !n.IsZero() }

// PercentageChangeOf computes the change of metric m for the target year.
//
// years must be in chronological order and data must hold each of them. For the earliest
// year the change is the CAGR between the earliest and the latest year; for later years it
// is the change from the previous year.
func PercentageChangeOf(years []string, data map[string]Year, target string, m Metric) PercentageChange {
	i := slices.Index(years, target)
	if i < 0 {
		return PercentageChange{}
	}
	current := data[target].Value(m)

	if i == 0 {
		n := len(years)
		latest := data[years[n-1]].Value(m)
		if n < 2 || !exists(current) || !exists(latest) || !current.IsPositive() || !latest.IsPositive() {
			return PercentageChange{}
		}
		cagr := (math.Pow(latest.Float()/current.Float(), 1/float64(n-1)) - 1) * 100
		return PercentageChange{Kind: CAGR, Value: Percent(cagr)}
	}

	previous := data[years[i-1]].Value(m)
	if !exists(current) || !exists(previous) {
		return PercentageChange{}
	}
	change := current.Sub(previous).Float() / previous.Float() * 100
	return PercentageChange{Kind: YearOverYear, Value: Percent(change)}
}

// PercentageChange computes the change of m for the year labelled target.
func (t *Table) PercentageChange(target string, m Metric) PercentageChange {
	return PercentageChangeOf(t.Years(), t.data(), target, m)
}

// Changes returns the change of m for every year, in chronological order.
func (t *Table) Changes(m Metric) []PercentageChange {
	years, data := t.Years(), t.data()
	changes := make([]PercentageChange, len(years))
	for i, y := range years {
		changes[i] = PercentageChangeOf(years, data, y, m)
	}
	return changes
}

// Mean returns the average of m over the years where it is present. Years without any
// entered fact are skipped. It is absent when no year has a value.
func (t *Table) Mean(m Metric) Number {
	total, count := N(0), 0
	for _, y := range t.years {
		if y.Raw.IsEmpty() {
			continue
		}
		if v := y.Value(m); v.IsSet() {
			total = total.Add(v)
			count++
		}
	}
	if count == 0 {
		return Absent
	}
	return div(total, N(count))
}

// ValueRange is the lowest and highest of a set of values.
type ValueRange struct {
	Min, Max Number
}

// IsEmpty reports whether the range was computed over no value.
func (r ValueRange) IsEmpty() bool { return !r.Min.IsSet() }

func (r *ValueRange) include(v Number) {
	if !v.IsSet() {
		return
	}
	if !r.Min.IsSet() || v.LessThan(r.Min) {
		r.Min = v
	}
	if !r.Max.IsSet() || v.GreaterThan(r.Max) {
		r.Max = v
	}
}

// Range returns the lowest and highest values of all the listed metrics across all years
// with at least one entered fact.
func (t *Table) Range(ms ...Metric) ValueRange {
	var r ValueRange
	for _, y := range t.years {
		if y.Raw.IsEmpty() {
			continue
		}
		for _, m := range ms {
			r.include(y.Value(m))
		}
	}
	return r
}

// ChangeRange returns the range of the year over year changes of m. CAGR is excluded.
func (t *Table) ChangeRange(m Metric) ValueRange {
	var r ValueRange
	for _, c := range t.Changes(m) {
		if c.Kind == YearOverYear {
			r.include(N(float64(c.Value)))
		}
	}
	return r
}
