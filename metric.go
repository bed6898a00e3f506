package fundamentals

import (
	"fmt"
	"strings"
)

// Metric identifies a yearly figure, either entered (raw) or derived from the raw figures of the same year.
//
// Metrics are declared in statement display order.
type Metric int

const (
	// per share
	SharePriceAtReportDate Metric = iota
	MaxSharePrice
	MinSharePrice
	AverageSharePrice
	EarningsPerShare
	NumberOfShares
	PriceEarningsRatioReportDate
	PriceEarningsRatioMax
	PriceEarningsRatioMin
	DividendPerShare
	DividendAmount
	DividendYield
	DividendPayoutRatio

	// profit and loss
	Revenue
	GrossProfit
	GrossMargin
	ProfitBeforeTax
	ProfitBeforeTaxMargin
	ProfitAfterTax
	ProfitAfterTaxForShareholders
	ProfitAfterTaxForShareholdersMargin

	// current assets
	Cash
	Inventories
	Receivables
	InvestmentsInSecurities
	OtherCurrentAssets
	TotalCurrentAssets

	// non-current assets
	PropertyPlantEquipment
	LandAndRealEstate
	InvestmentsSubsidiaries
	IntangibleAssets
	NonCurrentInvestments
	OtherNonCurrentAssets
	TotalNonCurrentAssets
	TotalAssets

	// current liabilities
	Borrowings
	Payables
	LeaseLiabilities
	TaxLiabilities
	OtherCurrentLiabilities
	TotalCurrentLiabilities

	// non-current liabilities
	LongTermDebts
	LongTermLeaseLiabilities
	DeferredTaxLiabilities
	OtherNonCurrentLiabilities
	TotalNonCurrentLiabilities
	TotalLiabilities

	// asset metrics
	NetCash
	NetNetCash
	NetCurrentAssets
	NetNetCurrentAssets
	NetTangibleAssets
	DebtToEquityRatio

	// equity
	ShareCapital
	RetainedEarnings
	Reserves
	EquityAttributableToShareholders
	NonControllingInterests
	TotalEquity
	TotalLiabilitiesAndEquity

	// cash flow
	NetCashFromOperatingActivities
	InvestmentsInPPE
	FreeCashFlow
	InvestmentsInSubsidiaries
	InvestmentsInAcquisitions

	metricCount // must stay last
)

// Group is a section of the financial statements.
type Group int

const (
	PerShare Group = iota
	ProfitLoss
	CurrentAssets
	NonCurrentAssets
	CurrentLiabilities
	NonCurrentLiabilities
	AssetMetrics
	Equity
	CashFlow
)

func (g Group) String() string {
	switch g {
	case PerShare:
		return "Per Share"
	case ProfitLoss:
		return "Profit & Loss"
	case CurrentAssets:
		return "Current Assets"
	case NonCurrentAssets:
		return "Non-Current Assets"
	case CurrentLiabilities:
		return "Current Liabilities"
	case NonCurrentLiabilities:
		return "Non-Current Liabilities"
	case AssetMetrics:
		return "Asset Metrics"
	case Equity:
		return "Equity"
	case CashFlow:
		return "Cash Flow"
	default:
		return "unknown"
	}
}

// Groups returns all statement sections in display order.
func Groups() []Group {
	groups := make([]Group, 0, CashFlow+1)
	for g := PerShare; g <= CashFlow; g++ {
		groups = append(groups, g)
	}
	return groups
}

// ParseGroup finds a section by its display name, ignoring case.
func ParseGroup(name string) (Group, error) {
	for _, g := range Groups() {
		if strings.EqualFold(g.String(), name) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown statement section %q", name)
}

// Unit tells how a metric value should be read and displayed.
type Unit int

const (
	Amount         Unit = iota // in the stock's currency
	PerShareAmount             // in the stock's currency, for one share
	Shares                     // a count of shares
	PercentUnit                // a value in percent
	Ratio                      // a plain multiple
)

type metricInfo struct {
	name    string
	label   string
	group   Group
	unit    Unit
	derived bool
	hover   string
}

var metrics = [metricCount]metricInfo{
	SharePriceAtReportDate:       {"share_price_at_report_date", "Share Price at Report Date", PerShare, PerShareAmount, false, ""},
	MaxSharePrice:                {"max_share_price", "Max Share Price", PerShare, PerShareAmount, false, ""},
	MinSharePrice:                {"min_share_price", "Min Share Price", PerShare, PerShareAmount, false, ""},
	AverageSharePrice:            {"average_share_price", "Average Share Price", PerShare, PerShareAmount, true, "(max + min) / 2"},
	EarningsPerShare:             {"earnings_per_share", "Earnings Per Share", PerShare, PerShareAmount, false, ""},
	NumberOfShares:               {"number_of_shares", "Number of Shares", PerShare, Shares, true, "profit after tax for shareholders / EPS"},
	PriceEarningsRatioReportDate: {"price_earnings_ratio_report_date", "P/E at Report Date", PerShare, Ratio, true, "share price at report date / EPS"},
	PriceEarningsRatioMax:        {"price_earnings_ratio_max", "P/E at Max Price", PerShare, Ratio, true, "max share price / EPS"},
	PriceEarningsRatioMin:        {"price_earnings_ratio_min", "P/E at Min Price", PerShare, Ratio, true, "min share price / EPS"},
	DividendPerShare:             {"dividend_per_share", "Dividend Per Share", PerShare, PerShareAmount, false, ""},
	DividendAmount:               {"dividend_amount", "Dividend Amount", PerShare, Amount, true, "dividend per share * number of shares"},
	DividendYield:                {"dividend_yield", "Dividend Yield", PerShare, PercentUnit, true, "dividend per share / average share price"},
	DividendPayoutRatio:          {"dividend_payout_ratio", "Dividend Payout Ratio", PerShare, Ratio, true, "dividend per share / EPS"},

	Revenue:                             {"revenue", "Revenue", ProfitLoss, Amount, false, ""},
	GrossProfit:                         {"gross_profit", "Gross Profit", ProfitLoss, Amount, false, ""},
	GrossMargin:                         {"gross_margin", "Gross Margin", ProfitLoss, PercentUnit, true, "gross profit / revenue"},
	ProfitBeforeTax:                     {"profit_before_tax", "Profit Before Tax", ProfitLoss, Amount, false, ""},
	ProfitBeforeTaxMargin:               {"profit_before_tax_margin", "Profit Before Tax Margin", ProfitLoss, PercentUnit, true, "profit before tax / revenue"},
	ProfitAfterTax:                      {"profit_after_tax", "Profit After Tax", ProfitLoss, Amount, false, ""},
	ProfitAfterTaxForShareholders:       {"profit_after_tax_for_shareholders", "Profit After Tax for Shareholders", ProfitLoss, Amount, false, ""},
	ProfitAfterTaxForShareholdersMargin: {"profit_after_tax_for_shareholders_margin", "Net Profit Margin", ProfitLoss, PercentUnit, true, "profit after tax for shareholders / revenue"},

	Cash:                    {"cash", "Cash", CurrentAssets, Amount, false, ""},
	Inventories:             {"inventories", "Inventories", CurrentAssets, Amount, false, ""},
	Receivables:             {"receivables", "Receivables", CurrentAssets, Amount, false, ""},
	InvestmentsInSecurities: {"investments_in_securities", "Investments in Securities", CurrentAssets, Amount, false, ""},
	OtherCurrentAssets:      {"other_current_assets", "Other Current Assets", CurrentAssets, Amount, false, ""},
	TotalCurrentAssets:      {"total_current_assets", "Total Current Assets", CurrentAssets, Amount, true, ""},

	PropertyPlantEquipment:  {"property_plant_equipment", "Property, Plant & Equipment", NonCurrentAssets, Amount, false, ""},
	LandAndRealEstate:       {"land_and_real_estate", "Land & Real Estate", NonCurrentAssets, Amount, false, ""},
	InvestmentsSubsidiaries: {"investments_subsidiaries", "Investments in Subsidiaries", NonCurrentAssets, Amount, false, ""},
	IntangibleAssets:        {"intangible_assets", "Intangible Assets", NonCurrentAssets, Amount, false, ""},
	NonCurrentInvestments:   {"non_current_investments", "Non-Current Investments", NonCurrentAssets, Amount, false, ""},
	OtherNonCurrentAssets:   {"other_non_current_assets", "Other Non-Current Assets", NonCurrentAssets, Amount, false, ""},
	TotalNonCurrentAssets:   {"total_non_current_assets", "Total Non-Current Assets", NonCurrentAssets, Amount, true, ""},
	TotalAssets:             {"total_assets", "Total Assets", NonCurrentAssets, Amount, true, "current + non-current assets"},

	Borrowings:              {"borrowings", "Borrowings", CurrentLiabilities, Amount, false, ""},
	Payables:                {"payables", "Payables", CurrentLiabilities, Amount, false, ""},
	LeaseLiabilities:        {"lease_liabilities", "Lease Liabilities", CurrentLiabilities, Amount, false, ""},
	TaxLiabilities:          {"tax_liabilities", "Tax Liabilities", CurrentLiabilities, Amount, false, ""},
	OtherCurrentLiabilities: {"other_current_liabilities", "Other Current Liabilities", CurrentLiabilities, Amount, false, ""},
	TotalCurrentLiabilities: {"total_current_liabilities", "Total Current Liabilities", CurrentLiabilities, Amount, true, ""},

	LongTermDebts:              {"long_term_debts", "Long-Term Debts", NonCurrentLiabilities, Amount, false, ""},
	LongTermLeaseLiabilities:   {"long_term_lease_liabilities", "Long-Term Lease Liabilities", NonCurrentLiabilities, Amount, false, ""},
	DeferredTaxLiabilities:     {"deferred_tax_liabilities", "Deferred Tax Liabilities", NonCurrentLiabilities, Amount, false, ""},
	OtherNonCurrentLiabilities: {"other_non_current_liabilities", "Other Non-Current Liabilities", NonCurrentLiabilities, Amount, false, ""},
	TotalNonCurrentLiabilities: {"total_non_current_liabilities", "Total Non-Current Liabilities", NonCurrentLiabilities, Amount, true, ""},
	TotalLiabilities:           {"total_liabilities", "Total Liabilities", NonCurrentLiabilities, Amount, true, "current + non-current liabilities"},

	NetCash:             {"net_cash", "Net Cash", AssetMetrics, Amount, true, "cash - current liabilities"},
	NetNetCash:          {"net_net_cash", "Net Net Cash", AssetMetrics, Amount, true, "cash - total liabilities"},
	NetCurrentAssets:    {"net_current_assets", "Net Current Assets", AssetMetrics, Amount, true, "current assets - current liabilities"},
	NetNetCurrentAssets: {"net_net_current_assets", "Net Net Current Assets", AssetMetrics, Amount, true, "current assets - total liabilities"},
	NetTangibleAssets:   {"net_tangible_assets", "Net Tangible Assets", AssetMetrics, Amount, true, "total assets - intangibles - total liabilities - non-controlling interests"},
	DebtToEquityRatio:   {"debt_to_equity_ratio", "Debt to Equity Ratio", AssetMetrics, Ratio, true, "total liabilities / total equity"},

	ShareCapital:                     {"share_capital", "Share Capital", Equity, Amount, false, ""},
	RetainedEarnings:                 {"retained_earnings", "Retained Earnings", Equity, Amount, false, ""},
	Reserves:                         {"reserves", "Reserves", Equity, Amount, false, ""},
	EquityAttributableToShareholders: {"equity_attributable_to_shareholders", "Equity Attributable to Shareholders", Equity, Amount, true, "share capital + reserves + retained earnings"},
	NonControllingInterests:          {"non_controlling_interests", "Non-Controlling Interests", Equity, Amount, false, ""},
	TotalEquity:                      {"total_equity", "Total Equity", Equity, Amount, true, ""},
	TotalLiabilitiesAndEquity:        {"total_liabilities_and_equity", "Total Liabilities & Equity", Equity, Amount, true, "should equal total assets"},

	NetCashFromOperatingActivities: {"net_cash_from_operating_activities", "Net Cash from Operating Activities", CashFlow, Amount, false, ""},
	InvestmentsInPPE:               {"investments_in_ppe", "Investments in PPE", CashFlow, Amount, false, ""},
	FreeCashFlow:                   {"free_cash_flow", "Free Cash Flow", CashFlow, Amount, true, "operating cash flow - investments in PPE"},
	InvestmentsInSubsidiaries:      {"investments_in_subsidiaries", "Investments in Subsidiaries", CashFlow, Amount, false, ""},
	InvestmentsInAcquisitions:      {"investments_in_acquisitions", "Investments in Acquisitions", CashFlow, Amount, false, ""},
}

var metricsByName = func() map[string]Metric {
	index := make(map[string]Metric, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		index[metrics[m].name] = m
	}
	return index
}()

// ParseMetric returns the metric known under the snake_case name.
func ParseMetric(name string) (Metric, error) {
	m, ok := metricsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", name)
	}
	return m, nil
}

func (m Metric) valid() bool { return m >= 0 && m < metricCount }

// Name returns the snake_case key used on the wire.
func (m Metric) Name() string {
	if !m.valid() {
		return "unknown"
	}
	return metrics[m].name
}

func (m Metric) String() string { return m.Name() }

// Label returns a human readable name.
func (m Metric) Label() string { return metrics[m].label }

// Description explains how a derived metric is computed, it is empty for most raw metrics.
func (m Metric) Description() string { return metrics[m].hover }

func (m Metric) Group() Group    { return metrics[m].group }
func (m Metric) Unit() Unit      { return metrics[m].unit }
func (m Metric) IsDerived() bool { return metrics[m].derived }

// Decimals returns the number of decimals used to display the metric.
func (m Metric) Decimals() int {
	switch metrics[m].unit {
	case Amount, Shares:
		return 0
	default:
		return 2
	}
}

// AllMetrics returns every metric in display order.
func AllMetrics() []Metric {
	all := make([]Metric, 0, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		all = append(all, m)
	}
	return all
}

// RawMetrics returns the metrics entered by the user, in display order.
func RawMetrics() []Metric { return filterMetrics(false) }

// DerivedMetrics returns the metrics computed by DeriveYear, in display order.
func DerivedMetrics() []Metric { return filterMetrics(true) }

func filterMetrics(derived bool) []Metric {
	var list []Metric
	for m := Metric(0); m < metricCount; m++ {
		if metrics[m].derived == derived {
			list = append(list, m)
		}
	}
	return list
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("invalid metric %d", int(m))
	}
	return []byte(m.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
