package fundamentals

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/fundamentals/date"
)

// FinancialHistory maps a fiscal year label (usually its year end, "2024-12-31") to the
// raw facts entered for that year. Labels sort chronologically.
type FinancialHistory map[string]YearlyRawFacts

// NewDefaultHistory returns four empty fiscal years ending on December 31st, the last
// one being lastYear.
func NewDefaultHistory(lastYear int) FinancialHistory {
	h := make(FinancialHistory, 4)
	for y := lastYear - 3; y <= lastYear; y++ {
		h[date.YearEnd(y).String()] = YearlyRawFacts{}
	}
	return h
}

// Years returns the year labels in chronological order.
func (h FinancialHistory) Years() []string {
	years := make([]string, 0, len(h))
	for y := range h {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}

func (h FinancialHistory) Len() int { return len(h) }

// Get returns the facts of a year, and whether the year exists.
func (h FinancialHistory) Get(year string) (YearlyRawFacts, bool) {
	f, ok := h[year]
	return f, ok
}

// Set updates a single raw line item of an existing year.
func (h FinancialHistory) Set(year string, m Metric, v Number) error {
	f, ok := h[year]
	if !ok {
		return fmt.Errorf("unknown year %q", year)
	}
	if err := f.Set(m, v); err != nil {
		return err
	}
	h[year] = f
	return nil
}

// Add inserts an empty year.
func (h FinancialHistory) Add(year string) error {
	year = strings.TrimSpace(year)
	if year == "" {
		return fmt.Errorf("empty year label")
	}
	if _, exists := h[year]; exists {
		return fmt.Errorf("year %q already exists", year)
	}
	h[year] = YearlyRawFacts{}
	return nil
}

// Remove deletes a year and all its facts.
func (h FinancialHistory) Remove(year string) error {
	if _, ok := h[year]; !ok {
		return fmt.Errorf("unknown year %q", year)
	}
	delete(h, year)
	return nil
}

// Rename changes the label of a year, keeping its facts.
func (h FinancialHistory) Rename(from, to string) error {
	to = strings.TrimSpace(to)
	f, ok := h[from]
	switch {
	case !ok:
		return fmt.Errorf("unknown year %q", from)
	case to == "":
		return fmt.Errorf("empty year label")
	case from == to:
		return nil
	}
	if _, exists := h[to]; exists {
		return fmt.Errorf("year %q already exists", to)
	}
	delete(h, from)
	h[to] = f
	return nil
}

// Year is one column of the derived table: the raw facts and the metrics derived from them.
type Year struct {
	Label   string
	Raw     YearlyRawFacts
	Derived YearlyDerivedMetrics
}

// Value returns any metric, raw or derived.
func (y Year) Value(m Metric) Number {
	if m.IsDerived() {
		return y.Derived.Get(m)
	}
	return y.Raw.Get(m)
}

// MarshalJSON writes raw and derived metrics in a single object.
func (y Year) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Label)
	for _, m := range AllMetrics() {
		w.Optional(m.Name(), y.Value(m))
	}
	return w.MarshalJSON()
}

// Table is the chronological list of years with their derived metrics.
type Table struct {
	years []Year
	index map[string]int
}

// Derive computes the derived metrics of every year. Nothing is cached: a Table is a
// snapshot of h at the time of the call.
func (h FinancialHistory) Derive() *Table {
	t := &Table{index: make(map[string]int, len(h))}
	for i, label := range h.Years() {
		raw := h[label]
		t.years = append(t.years, Year{Label: label, Raw: raw, Derived: DeriveYear(raw)})
		t.index[label] = i
	}
	return t
}

// Len returns the number of years.
func (t *Table) Len() int { return len(t.years) }

// Years returns the year labels in chronological order.
func (t *Table) Years() []string {
	labels := make([]string, len(t.years))
	for i, y := range t.years {
		labels[i] = y.Label
	}
	return labels
}

// Rows returns all years in chronological order.
func (t *Table) Rows() []Year { return t.years }

// Lookup returns the year with the given label.
func (t *Table) Lookup(label string) (Year, bool) {
	i, ok := t.index[label]
	if !ok {
		return Year{}, false
	}
	return t.years[i], true
}

// Earliest returns the first year, ok is false for an empty table.
func (t *Table) Earliest() (y Year, ok bool) {
	if len(t.years) == 0 {
		return Year{}, false
	}
	return t.years[0], true
}

// Latest returns the most recent year, ok is false for an empty table.
func (t *Table) Latest() (y Year, ok bool) {
	if len(t.years) == 0 {
		return Year{}, false
	}
	return t.years[len(t.years)-1], true
}

// Values returns the value of m for every year, in chronological order.
func (t *Table) Values(m Metric) []Number {
	values := make([]Number, len(t.years))
	for i, y := range t.years {
		values[i] = y.Value(m)
	}
	return values
}

// data returns the years indexed by label.
func (t *Table) data() map[string]Year {
	data := make(map[string]Year, len(t.years))
	for _, y := range t.years {
		data[y.Label] = y
	}
	return data
}

// MarshalJSON writes the table as a list of years.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t.years == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.years)
}
