package fundamentals

import (
	"encoding/json"
	"testing"
)

func TestTable_Chart(t *testing.T) {
	h := FinancialHistory{
		"2023-12-31": {SharePriceAtReportDate: N(10), EarningsPerShare: N(1), Revenue: N(500)},
		"2024-12-31": {SharePriceAtReportDate: N(12), Revenue: N(600), ProfitAfterTaxForShareholders: N(60)},
	}
	got, err := json.Marshal(h.Derive().Chart())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"years":["2023-12-31","2024-12-31"],` +
		`"left":[{"metric":"share_price_at_report_date","label":"Share Price at Report Date","points":[10,12]},` +
		`{"metric":"earnings_per_share","label":"Earnings Per Share","points":[1,null]}],` +
		`"right":[{"metric":"revenue","label":"Revenue","points":[500,600]},` +
		`{"metric":"profit_after_tax_for_shareholders","label":"Profit After Tax for Shareholders","points":[null,60]}]}`
	if string(got) != want {
		t.Errorf("chart =\n%s\nwant\n%s", got, want)
	}
}
