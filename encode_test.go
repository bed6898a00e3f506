package fundamentals

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/etnz/fundamentals/date"
	"github.com/google/go-cmp/cmp"
)

func TestDecodeFinancialData(t *testing.T) {
	input := `{
		"stock_id": 7,
		"updated_at": "2025-01-02T10:00:00Z",
		"data": {
			"2024-12-31": {"revenue": 1000, "gross_profit": "400", "gross_margin": 40, "cash": null},
			"2023-12-31": {},
			"2022-12-31": {"revenue": "", "cash": "12.5"}
		}
	}`
	got, err := DecodeFinancialData(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeFinancialData: %v", err)
	}
	updated := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	want := &FinancialData{
		StockID:   7,
		UpdatedAt: &updated,
		Data: FinancialHistory{
			"2022-12-31": {Cash: N(12.5)},
			"2023-12-31": {},
			"2024-12-31": {Revenue: N(1000), GrossProfit: N(400)},
		},
	}
	if diff := cmp.Diff(want, got, numberCmp); diff != "" {
		t.Errorf("DecodeFinancialData mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFinancialData_NullData(t *testing.T) {
	got, err := DecodeFinancialData(strings.NewReader(`{"stock_id": 3, "data": null}`))
	if err != nil {
		t.Fatalf("DecodeFinancialData: %v", err)
	}
	if got.Data == nil || got.Data.Len() != 0 {
		t.Errorf("Data = %v, want an empty history", got.Data)
	}
}

func TestEncodeFinancialData(t *testing.T) {
	fd := &FinancialData{
		StockID: 7,
		Data: FinancialHistory{
			"2024-12-31": {Cash: N(5), Revenue: N(1000)},
		},
	}
	var buf bytes.Buffer
	if err := EncodeFinancialData(&buf, fd); err != nil {
		t.Fatalf("EncodeFinancialData: %v", err)
	}
	want := `{
  "stock_id": 7,
  "data": {
    "2024-12-31": {
      "revenue": 1000,
      "cash": 5
    }
  }
}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeFinancialData =\n%s\nwant\n%s", got, want)
	}

	back, err := DecodeFinancialData(&buf)
	if err != nil {
		t.Fatalf("DecodeFinancialData: %v", err)
	}
	if diff := cmp.Diff(fd, back, numberCmp); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSnapshot_Null(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader("null"))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if s != nil {
		t.Errorf("DecodeSnapshot(null) = %+v, want nil", s)
	}
}

func TestDecodeSnapshot_BlankFields(t *testing.T) {
	input := `{
		"curr_date": "",
		"current_share_price": "",
		"past_4q_revenue": "1000",
		"past_4q_net_profit": null,
		"past_4q_earnings_per_share": "",
		"stock_type": "",
		"invest": "wait"
	}`
	got, err := DecodeSnapshot(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	want := &InvestmentSnapshot{Past4QRevenue: N(1000), Action: Wait}
	if diff := cmp.Diff(want, got, numberCmp, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("DecodeSnapshot mismatch (-want +got):\n%s", diff)
	}
}
