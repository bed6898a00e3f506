package fundamentals

import (
	"math"
	"testing"
)

func TestPercentageChange(t *testing.T) {
	years := []string{"2021", "2022", "2023"}
	testCases := []struct {
		name     string
		values   []float64
		target   string
		wantKind ChangeKind
		want     float64
		wantText string
	}{
		{"cagr for the earliest year", []float64{100, 150, 200}, "2021", CAGR, (math.Sqrt2 - 1) * 100, "CAGR = +41.4%"},
		{"year over year", []float64{100, 150, 200}, "2022", YearOverYear, 50, "+50.0%"},
		{"latest year", []float64{100, 150, 200}, "2023", YearOverYear, 100.0 / 3, "+33.3%"},
		{"decline", []float64{100, 150, 120}, "2023", YearOverYear, -20, "-20.0%"},
		{"negative cagr", []float64{100, 80, 25}, "2021", CAGR, -50, "CAGR = -50.0%"},
		{"cagr with negative start", []float64{-100, 150, 200}, "2021", Unavailable, 0, "-"},
		{"cagr with zero end", []float64{100, 150, 0}, "2021", Unavailable, 0, "-"},
		{"zero previous", []float64{100, 0, 200}, "2023", Unavailable, 0, "-"},
		{"zero current", []float64{100, 0, 200}, "2022", Unavailable, 0, "-"},
		{"unknown year", []float64{100, 150, 200}, "2020", Unavailable, 0, "-"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := history(t, Revenue, years, tc.values).Derive()
			got := table.PercentageChange(tc.target, Revenue)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", got.Kind, tc.wantKind)
			}
			if !got.Value.Equal(Percent(tc.want)) {
				t.Errorf("value = %v, want %v", float64(got.Value), tc.want)
			}
			if got.String() != tc.wantText {
				t.Errorf("String() = %q, want %q", got.String(), tc.wantText)
			}
		})
	}
}

func TestPercentageChange_SingleYear(t *testing.T) {
	table := history(t, Revenue, []string{"2024-12-31"}, []float64{100}).Derive()
	if got := table.PercentageChange("2024-12-31", Revenue); got.Available() {
		t.Errorf("PercentageChange = %v, want unavailable", got)
	}
}

func TestPercentageChange_AbsentPrevious(t *testing.T) {
	h := FinancialHistory{
		"2023-12-31": {},
		"2024-12-31": {Revenue: N(100)},
	}
	if got := h.Derive().PercentageChange("2024-12-31", Revenue); got.Available() {
		t.Errorf("PercentageChange = %v, want unavailable", got)
	}
}

func TestPercentageChange_DerivedMetric(t *testing.T) {
	h := FinancialHistory{
		"2023-12-31": {Revenue: N(1000), GrossProfit: N(400)},
		"2024-12-31": {Revenue: N(1000), GrossProfit: N(500)},
	}
	got := h.Derive().PercentageChange("2024-12-31", GrossMargin)
	if got.Kind != YearOverYear || !got.Value.Equal(25) {
		t.Errorf("PercentageChange = %v, want +25.0%%", got)
	}
}

func TestTable_Mean(t *testing.T) {
	h := FinancialHistory{
		"2022-12-31": {DividendPerShare: N(2), MaxSharePrice: N(100), MinSharePrice: N(100)},
		"2023-12-31": {DividendPerShare: N(4), MaxSharePrice: N(100), MinSharePrice: N(100)},
	}
	assertNumber(t, "mean dividend yield", h.Derive().Mean(DividendYield), 3)

	if got := h.Derive().Mean(Revenue); got.IsSet() {
		t.Errorf("Mean(revenue) = %v, want absent", got)
	}
	if got := (FinancialHistory{}).Derive().Mean(DividendYield); got.IsSet() {
		t.Errorf("Mean over no year = %v, want absent", got)
	}
}

func TestTable_Range(t *testing.T) {
	h := FinancialHistory{
		"2022-12-31": {EarningsPerShare: N(1), SharePriceAtReportDate: N(12), MaxSharePrice: N(20), MinSharePrice: N(8)},
		"2023-12-31": {EarningsPerShare: N(2), SharePriceAtReportDate: N(30), MaxSharePrice: N(36), MinSharePrice: N(14)},
	}
	r := h.Derive().Range(PriceEarningsRatioReportDate, PriceEarningsRatioMax, PriceEarningsRatioMin)
	assertNumber(t, "min", r.Min, 7)
	assertNumber(t, "max", r.Max, 20)

	single := FinancialHistory{"2023-12-31": {Revenue: N(5)}}.Derive().Range(Revenue)
	if !single.Min.Equal(single.Max) {
		t.Errorf("single point range = %v, want min == max", single)
	}
	if r := (FinancialHistory{}).Derive().Range(Revenue); !r.IsEmpty() {
		t.Errorf("Range over no year = %v, want empty", r)
	}
}

func TestTable_ChangeRange(t *testing.T) {
	table := history(t, ProfitAfterTaxForShareholders, []string{"2021", "2022", "2023"}, []float64{100, 150, 120}).Derive()
	r := table.ChangeRange(ProfitAfterTaxForShareholders)
	assertNumber(t, "min", r.Min, -20)
	assertNumber(t, "max", r.Max, 50)
}

func TestTable_SkipsEmptyYears(t *testing.T) {
	h := NewDefaultHistory(2024)
	for m, v := range map[Metric]float64{
		DividendPerShare: 6, EarningsPerShare: 10,
		SharePriceAtReportDate: 100, MaxSharePrice: 120, MinSharePrice: 80,
	} {
		if err := h.Set("2024-12-31", m, N(v)); err != nil {
			t.Fatalf("Set(%s): %v", m, err)
		}
	}
	table := h.Derive()

	assertNumber(t, "mean dividend yield", table.Mean(DividendYield), 6)
	r := table.Range(PriceEarningsRatioReportDate, PriceEarningsRatioMax, PriceEarningsRatioMin)
	assertNumber(t, "min", r.Min, 8)
	assertNumber(t, "max", r.Max, 12)
}
