package fundamentals

// Comparison is a current figure and its change, in percent, against the latest fiscal year.
type Comparison struct {
	Current      Number
	VersusLatest Number
}

// ProfitVsPER puts the profit growth next to the price earnings ratios of the history.
type ProfitVsPER struct {
	// CAGR of the profit after tax for shareholders, from the earliest to the latest year.
	CAGR PercentageChange
	// ProfitRange is the range of the year over year profit changes, in percent.
	ProfitRange ValueRange
	// PERRange is the range of the three price earnings ratios over all years.
	PERRange ValueRange
}

// Evaluation is the outcome of comparing a snapshot with the derived history.
type Evaluation struct {
	NetProfitMargin    Comparison
	NumberOfShares     Comparison
	PriceEarningsRatio Number
	AverageDividend    Number
	ProfitVsPER        ProfitVsPER
	// ProfitDivVsPER is (profit CAGR + average dividend yield) / current P/E.
	ProfitDivVsPER Number
}

// change returns the change from ref to cur in percent, absent when cur does not exist or ref is zero.
func change(cur, ref Number) Number {
	if !exists(cur) || !exists(ref) {
		return Absent
	}
	return div(hundred.Mul(cur.Sub(ref)), ref)
}

// Evaluate combines a snapshot with the derived history. It never fails: any figure that
// cannot be computed is absent.
func Evaluate(s InvestmentSnapshot, t *Table) Evaluation {
	var e Evaluation
	latest, hasLatest := t.Latest()

	if exists(s.Past4QNetProfit) && exists(s.Past4QRevenue) {
		e.NetProfitMargin.Current = div(hundred.Mul(s.Past4QNetProfit), s.Past4QRevenue)
	}
	if exists(s.Past4QNetProfit) && exists(s.Past4QEarningsPerShare) {
		e.NumberOfShares.Current = div(s.Past4QNetProfit, s.Past4QEarningsPerShare)
	}
	if hasLatest {
		e.NetProfitMargin.VersusLatest = change(e.NetProfitMargin.Current, latest.Derived.ProfitAfterTaxForShareholdersMargin)
		e.NumberOfShares.VersusLatest = change(e.NumberOfShares.Current, latest.Derived.NumberOfShares)
	}

	if exists(s.CurrentSharePrice) && exists(s.Past4QEarningsPerShare) {
		e.PriceEarningsRatio = div(s.CurrentSharePrice, s.Past4QEarningsPerShare)
	}

	e.AverageDividend = t.Mean(DividendYield)

	if earliest, ok := t.Earliest(); ok {
		if c := t.PercentageChange(earliest.Label, ProfitAfterTaxForShareholders); c.Kind == CAGR {
			e.ProfitVsPER.CAGR = c
		}
	}
	e.ProfitVsPER.ProfitRange = t.ChangeRange(ProfitAfterTaxForShareholders)
	e.ProfitVsPER.PERRange = t.Range(PriceEarningsRatioReportDate, PriceEarningsRatioMax, PriceEarningsRatioMin)

	// The CAGR is used unrounded, not as the one decimal value displayed in its text.
	if e.ProfitVsPER.CAGR.Kind == CAGR && e.PriceEarningsRatio.IsPositive() {
		growth := N(float64(e.ProfitVsPER.CAGR.Value)).Add(e.AverageDividend)
		e.ProfitDivVsPER = div(growth, e.PriceEarningsRatio)
	}
	return e
}

// Verdict grades a ProfitDivVsPER ratio.
type Verdict int

const (
	NoVerdict Verdict = iota
	Poor
	Acceptable
	Good
)

func (v Verdict) String() string {
	switch v {
	case Poor:
		return "poor"
	case Acceptable:
		return "acceptable"
	case Good:
		return "good"
	default:
		return "-"
	}
}

var (
	acceptableRatio = N(1.5)
	goodRatio       = N(2)
)

// Verdict grades ProfitDivVsPER: above 1.5 is acceptable, above 2.0 is good.
func (e Evaluation) Verdict() Verdict {
	r := e.ProfitDivVsPER
	switch {
	case !r.IsSet():
		return NoVerdict
	case !r.LessThan(goodRatio):
		return Good
	case !r.LessThan(acceptableRatio):
		return Acceptable
	default:
		return Poor
	}
}
