package fundamentals

import (
	"encoding/json"
	"testing"
)

func TestMetricCounts(t *testing.T) {
	if got := len(RawMetrics()); got != 38 {
		t.Errorf("len(RawMetrics()) = %d, want 38", got)
	}
	if got := len(DerivedMetrics()); got != 27 {
		t.Errorf("len(DerivedMetrics()) = %d, want 27", got)
	}
	if got := len(AllMetrics()); got != int(metricCount) {
		t.Errorf("len(AllMetrics()) = %d, want %d", got, metricCount)
	}
}

func TestMetricNamesAreUnique(t *testing.T) {
	seen := map[string]Metric{}
	for _, m := range AllMetrics() {
		if m.Name() == "" || m.Label() == "" {
			t.Errorf("metric %d has no name or label", int(m))
		}
		if prev, ok := seen[m.Name()]; ok {
			t.Errorf("metrics %d and %d share the name %q", int(prev), int(m), m.Name())
		}
		seen[m.Name()] = m
	}
}

func TestParseMetric(t *testing.T) {
	testCases := []struct {
		name    string
		want    Metric
		wantErr bool
	}{
		{name: "revenue", want: Revenue},
		{name: "profit_after_tax_for_shareholders_margin", want: ProfitAfterTaxForShareholdersMargin},
		{name: "investments_in_acquisitions", want: InvestmentsInAcquisitions},
		{name: "Revenue", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMetric(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMetric(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestMetricProperties(t *testing.T) {
	testCases := []struct {
		metric   Metric
		group    Group
		unit     Unit
		derived  bool
		decimals int
	}{
		{Revenue, ProfitLoss, Amount, false, 0},
		{GrossMargin, ProfitLoss, PercentUnit, true, 2},
		{EarningsPerShare, PerShare, PerShareAmount, false, 2},
		{NumberOfShares, PerShare, Shares, true, 0},
		{DebtToEquityRatio, AssetMetrics, Ratio, true, 2},
		{FreeCashFlow, CashFlow, Amount, true, 0},
	}
	for _, tc := range testCases {
		m := tc.metric
		if m.Group() != tc.group || m.Unit() != tc.unit || m.IsDerived() != tc.derived || m.Decimals() != tc.decimals {
			t.Errorf("%s: got (%v, %v, %v, %d), want (%v, %v, %v, %d)", m, m.Group(), m.Unit(), m.IsDerived(), m.Decimals(),
				tc.group, tc.unit, tc.derived, tc.decimals)
		}
	}
}

func TestParseGroup(t *testing.T) {
	for _, g := range Groups() {
		got, err := ParseGroup(g.String())
		if err != nil || got != g {
			t.Errorf("ParseGroup(%q) = %v, %v, want %v", g.String(), got, err, g)
		}
	}
	if got, err := ParseGroup("profit & loss"); err != nil || got != ProfitLoss {
		t.Errorf("ParseGroup is case sensitive: %v, %v", got, err)
	}
	if _, err := ParseGroup("assets"); err == nil {
		t.Error("ParseGroup(\"assets\") succeeded, want an error")
	}
}

func TestMetricText(t *testing.T) {
	raw, err := json.Marshal(map[string]Metric{"left": SharePriceAtReportDate})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), `{"left":"share_price_at_report_date"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var m Metric
	if err := json.Unmarshal([]byte(`"net_cash"`), &m); err != nil || m != NetCash {
		t.Errorf("json.Unmarshal() = %v, %v, want net_cash", m, err)
	}
	if err := json.Unmarshal([]byte(`"ebitda"`), &m); err == nil {
		t.Error("json.Unmarshal(ebitda) succeeded, want an error")
	}
}
