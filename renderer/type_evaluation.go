package renderer

import (
	"github.com/etnz/fundamentals"
)

// Evaluation is the view of an investment evaluation, every figure is already formatted.
type Evaluation struct {
	Stock     string `json:"stock"`
	Date      string `json:"date"`
	Price     string `json:"price"`
	StockType string `json:"stockType"`
	Action    string `json:"action"`
	Reasoning string `json:"reasoning,omitempty"`

	NetProfitMargin         string `json:"netProfitMargin"`
	NetProfitMarginVsLatest string `json:"netProfitMarginVsLatest"`
	NumberOfShares          string `json:"numberOfShares"`
	NumberOfSharesVsLatest  string `json:"numberOfSharesVsLatest"`
	AverageDividend         string `json:"averageDividend"`
	PriceEarningsRatio      string `json:"priceEarningsRatio"`
	ProfitCAGR              string `json:"profitCAGR"`
	ProfitRange             string `json:"profitRange"`
	PERRange                string `json:"perRange"`
	ProfitDivVsPER          string `json:"profitDivVsPER"`
	Verdict                 string `json:"verdict"`
}

// NewEvaluation formats the evaluation of snapshot s against its history.
func NewEvaluation(stock string, s fundamentals.InvestmentSnapshot, e fundamentals.Evaluation, f Formatter) *Evaluation {
	oneDecimal := func(n fundamentals.Number) string {
		if !n.IsSet() {
			return "-"
		}
		return n.Decimal().StringFixed(1) + "%"
	}
	v := &Evaluation{
		Stock:     stock,
		Date:      s.Date.String(),
		Price:     f.PerShare(s.CurrentSharePrice),
		StockType: s.StockType.Label(),
		Action:    s.Action.Label(),
		Reasoning: s.Reasoning,

		NetProfitMargin:         f.Percent(e.NetProfitMargin.Current),
		NetProfitMarginVsLatest: f.SignedPercent(e.NetProfitMargin.VersusLatest),
		NumberOfShares:          f.Shares(e.NumberOfShares.Current),
		NumberOfSharesVsLatest:  f.SignedPercent(e.NumberOfShares.VersusLatest),
		AverageDividend:         f.Percent(e.AverageDividend),
		PriceEarningsRatio:      f.Ratio(e.PriceEarningsRatio),
		ProfitCAGR:              e.ProfitVsPER.CAGR.String(),
		ProfitRange:             f.Range(e.ProfitVsPER.ProfitRange, oneDecimal),
		PERRange:                f.Range(e.ProfitVsPER.PERRange, f.Ratio),
		ProfitDivVsPER:          f.Ratio(e.ProfitDivVsPER),
		Verdict:                 e.Verdict().String(),
	}
	if v.Date == "" {
		v.Date = "-"
	}
	return v
}
