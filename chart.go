package fundamentals

// Series is a named list of points, one per year. Absent points are null.
type Series struct {
	Metric Metric   `json:"metric"`
	Label  string   `json:"label"`
	Points []Number `json:"points"`
}

// DualAxisChart holds the data of the history chart: per share figures on the left axis and
// statement amounts on the right axis.
type DualAxisChart struct {
	Years []string `json:"years"`
	Left  []Series `json:"left"`
	Right []Series `json:"right"`
}

// Chart returns the share price and EPS series against the revenue and profit series.
func (t *Table) Chart() DualAxisChart {
	series := func(ms ...Metric) []Series {
		list := make([]Series, 0, len(ms))
		for _, m := range ms {
			list = append(list, Series{Metric: m, Label: m.Label(), Points: t.Values(m)})
		}
		return list
	}
	return DualAxisChart{
		Years: t.Years(),
		Left:  series(SharePriceAtReportDate, EarningsPerShare),
		Right: series(Revenue, ProfitAfterTaxForShareholders),
	}
}
