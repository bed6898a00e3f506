package fundamentals

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// numberCmp compares Numbers by presence and value.
var numberCmp = cmp.Comparer(func(a, b Number) bool { return a.Equal(b) })

// assertNumber fails when got is not want, within a small tolerance.
func assertNumber(t *testing.T, name string, got Number, want float64) {
	t.Helper()
	if !got.IsSet() {
		t.Errorf("%s is absent, want %v", name, want)
		return
	}
	if math.Abs(got.Float()-want) > 1e-6 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// history builds a FinancialHistory with one metric filled for each year.
func history(t *testing.T, m Metric, years []string, values []float64) FinancialHistory {
	t.Helper()
	h := make(FinancialHistory)
	for i, y := range years {
		var f YearlyRawFacts
		if err := f.Set(m, N(values[i])); err != nil {
			t.Fatalf("Set(%s): %v", m, err)
		}
		h[y] = f
	}
	return h
}
