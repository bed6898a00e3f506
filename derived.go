package fundamentals

// YearlyDerivedMetrics are the figures computed from one year's raw facts.
//
// All fields are always present: a ratio whose divisor is zero or absent is 0.
type YearlyDerivedMetrics struct {
	NumberOfShares               Number
	AverageSharePrice            Number
	PriceEarningsRatioReportDate Number
	PriceEarningsRatioMax        Number
	PriceEarningsRatioMin        Number
	DividendAmount               Number
	DividendYield                Number
	DividendPayoutRatio          Number

	GrossMargin                         Number
	ProfitBeforeTaxMargin               Number
	ProfitAfterTaxForShareholdersMargin Number

	TotalCurrentAssets         Number
	TotalNonCurrentAssets      Number
	TotalAssets                Number
	TotalCurrentLiabilities    Number
	TotalNonCurrentLiabilities Number
	TotalLiabilities           Number

	NetCash             Number
	NetNetCash          Number
	NetCurrentAssets    Number
	NetNetCurrentAssets Number
	NetTangibleAssets   Number
	DebtToEquityRatio   Number

	EquityAttributableToShareholders Number
	TotalEquity                      Number
	TotalLiabilitiesAndEquity        Number

	FreeCashFlow Number
}

// DeriveYear computes the derived metrics of a single year.
//
// It depends on f only, never fails and accepts partially filled or empty facts.
func DeriveYear(f YearlyRawFacts) YearlyDerivedMetrics {
	var d YearlyDerivedMetrics

	eps := f.EarningsPerShare
	d.NumberOfShares = div(f.ProfitAfterTaxForShareholders, eps)
	d.AverageSharePrice = div(sum(f.MaxSharePrice, f.MinSharePrice), N(2))
	d.PriceEarningsRatioReportDate = div(f.SharePriceAtReportDate, eps)
	d.PriceEarningsRatioMax = div(f.MaxSharePrice, eps)
	d.PriceEarningsRatioMin = div(f.MinSharePrice, eps)
	d.DividendAmount = f.DividendPerShare.Mul(d.NumberOfShares)
	d.DividendYield = div(hundred.Mul(f.DividendPerShare), d.AverageSharePrice)
	d.DividendPayoutRatio = div(f.DividendPerShare, eps)

	d.GrossMargin = div(hundred.Mul(f.GrossProfit), f.Revenue)
	d.ProfitBeforeTaxMargin = div(hundred.Mul(f.ProfitBeforeTax), f.Revenue)
	d.ProfitAfterTaxForShareholdersMargin = div(hundred.Mul(f.ProfitAfterTaxForShareholders), f.Revenue)

	d.TotalCurrentAssets = sum(f.Cash, f.Inventories, f.Receivables, f.InvestmentsInSecurities, f.OtherCurrentAssets)
	d.TotalNonCurrentAssets = sum(f.PropertyPlantEquipment, f.LandAndRealEstate, f.InvestmentsSubsidiaries,
		f.IntangibleAssets, f.NonCurrentInvestments, f.OtherNonCurrentAssets)
	d.TotalAssets = d.TotalCurrentAssets.Add(d.TotalNonCurrentAssets)

	d.TotalCurrentLiabilities = sum(f.Borrowings, f.Payables, f.LeaseLiabilities, f.TaxLiabilities, f.OtherCurrentLiabilities)
	d.TotalNonCurrentLiabilities = sum(f.LongTermDebts, f.LongTermLeaseLiabilities, f.DeferredTaxLiabilities,
		f.OtherNonCurrentLiabilities)
	d.TotalLiabilities = d.TotalCurrentLiabilities.Add(d.TotalNonCurrentLiabilities)

	d.EquityAttributableToShareholders = sum(f.ShareCapital, f.Reserves, f.RetainedEarnings)
	d.TotalEquity = d.EquityAttributableToShareholders.Add(f.NonControllingInterests)
	d.TotalLiabilitiesAndEquity = d.TotalLiabilities.Add(d.TotalEquity)

	d.NetCash = f.Cash.Sub(d.TotalCurrentLiabilities)
	d.NetNetCash = f.Cash.Sub(d.TotalLiabilities)
	d.NetCurrentAssets = d.TotalCurrentAssets.Sub(d.TotalCurrentLiabilities)
	d.NetNetCurrentAssets = d.TotalCurrentAssets.Sub(d.TotalLiabilities)
	d.NetTangibleAssets = d.TotalAssets.Sub(f.IntangibleAssets).Sub(d.TotalLiabilities).Sub(f.NonControllingInterests)
	d.DebtToEquityRatio = div(d.TotalLiabilities, d.TotalEquity)

	d.FreeCashFlow = f.NetCashFromOperatingActivities.Sub(f.InvestmentsInPPE)
	return d
}

// Get returns the derived metric m. It is absent for raw metrics.
func (d YearlyDerivedMetrics) Get(m Metric) Number {
	switch m {
	case NumberOfShares:
		return d.NumberOfShares
	case AverageSharePrice:
		return d.AverageSharePrice
	case PriceEarningsRatioReportDate:
		return d.PriceEarningsRatioReportDate
	case PriceEarningsRatioMax:
		return d.PriceEarningsRatioMax
	case PriceEarningsRatioMin:
		return d.PriceEarningsRatioMin
	case DividendAmount:
		return d.DividendAmount
	case DividendYield:
		return d.DividendYield
	case DividendPayoutRatio:
		return d.DividendPayoutRatio
	case GrossMargin:
		return d.GrossMargin
	case ProfitBeforeTaxMargin:
		return d.ProfitBeforeTaxMargin
	case ProfitAfterTaxForShareholdersMargin:
		return d.ProfitAfterTaxForShareholdersMargin
	case TotalCurrentAssets:
		return d.TotalCurrentAssets
	case TotalNonCurrentAssets:
		return d.TotalNonCurrentAssets
	case TotalAssets:
		return d.TotalAssets
	case TotalCurrentLiabilities:
		return d.TotalCurrentLiabilities
	case TotalNonCurrentLiabilities:
		return d.TotalNonCurrentLiabilities
	case TotalLiabilities:
		return d.TotalLiabilities
	case NetCash:
		return d.NetCash
	case NetNetCash:
		return d.NetNetCash
	case NetCurrentAssets:
		return d.NetCurrentAssets
	case NetNetCurrentAssets:
		return d.NetNetCurrentAssets
	case NetTangibleAssets:
		return d.NetTangibleAssets
	case DebtToEquityRatio:
		return d.DebtToEquityRatio
	case EquityAttributableToShareholders:
		return d.EquityAttributableToShareholders
	case TotalEquity:
		return d.TotalEquity
	case TotalLiabilitiesAndEquity:
		return d.TotalLiabilitiesAndEquity
	case FreeCashFlow:
		return d.FreeCashFlow
	default:
		return Absent
	}
}

// MarshalJSON writes the derived metrics in statement order.
func (d YearlyDerivedMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, m := range DerivedMetrics() {
		w.Optional(m.Name(), d.Get(m))
	}
	return w.MarshalJSON()
}
