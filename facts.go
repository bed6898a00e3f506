package fundamentals

import (
	"encoding/json"
	"fmt"
)

// YearlyRawFacts holds the line items entered for one fiscal year.
//
// Every field is optional: an absent field has not been entered yet.
type YearlyRawFacts struct {
	// per share
	SharePriceAtReportDate Number `json:"share_price_at_report_date"`
	MaxSharePrice          Number `json:"max_share_price"`
	MinSharePrice          Number `json:"min_share_price"`
	EarningsPerShare       Number `json:"earnings_per_share"`
	DividendPerShare       Number `json:"dividend_per_share"`

	// profit and loss
	Revenue                       Number `json:"revenue"`
	GrossProfit                   Number `json:"gross_profit"`
	ProfitBeforeTax               Number `json:"profit_before_tax"`
	ProfitAfterTax                Number `json:"profit_after_tax"`
	ProfitAfterTaxForShareholders Number `json:"profit_after_tax_for_shareholders"`

	// current assets
	Cash                    Number `json:"cash"`
	Inventories             Number `json:"inventories"`
	Receivables             Number `json:"receivables"`
	InvestmentsInSecurities Number `json:"investments_in_securities"`
	OtherCurrentAssets      Number `json:"other_current_assets"`

	// non-current assets
	PropertyPlantEquipment  Number `json:"property_plant_equipment"`
	LandAndRealEstate       Number `json:"land_and_real_estate"`
	InvestmentsSubsidiaries Number `json:"investments_subsidiaries"`
	IntangibleAssets        Number `json:"intangible_assets"`
	NonCurrentInvestments   Number `json:"non_current_investments"`
	OtherNonCurrentAssets   Number `json:"other_non_current_assets"`

	// current liabilities
	Borrowings              Number `json:"borrowings"`
	Payables                Number `json:"payables"`
	LeaseLiabilities        Number `json:"lease_liabilities"`
	TaxLiabilities          Number `json:"tax_liabilities"`
	OtherCurrentLiabilities Number `json:"other_current_liabilities"`

	// non-current liabilities
	LongTermDebts              Number `json:"long_term_debts"`
	LongTermLeaseLiabilities   Number `json:"long_term_lease_liabilities"`
	DeferredTaxLiabilities     Number `json:"deferred_tax_liabilities"`
	OtherNonCurrentLiabilities Number `json:"other_non_current_liabilities"`

	// equity
	ShareCapital            Number `json:"share_capital"`
	RetainedEarnings        Number `json:"retained_earnings"`
	Reserves                Number `json:"reserves"`
	NonControllingInterests Number `json:"non_controlling_interests"`

	// cash flow
	NetCashFromOperatingActivities Number `json:"net_cash_from_operating_activities"`
	InvestmentsInPPE               Number `json:"investments_in_ppe"`
	InvestmentsInSubsidiaries      Number `json:"investments_in_subsidiaries"`
	InvestmentsInAcquisitions      Number `json:"investments_in_acquisitions"`
}

// field returns the address of the raw line item for m, or nil if m is derived.
func (f *YearlyRawFacts) field(m Metric) *Number {
	switch m {
	case SharePriceAtReportDate:
		return &f.SharePriceAtReportDate
	case MaxSharePrice:
		return &f.MaxSharePrice
	case MinSharePrice:
		return &f.MinSharePrice
	case EarningsPerShare:
		return &f.EarningsPerShare
	case DividendPerShare:
		return &f.DividendPerShare
	case Revenue:
		return &f.Revenue
	case GrossProfit:
		return &f.GrossProfit
	case ProfitBeforeTax:
		return &f.ProfitBeforeTax
	case ProfitAfterTax:
		return &f.ProfitAfterTax
	case ProfitAfterTaxForShareholders:
		return &f.ProfitAfterTaxForShareholders
	case Cash:
		return &f.Cash
	case Inventories:
		return &f.Inventories
	case Receivables:
		return &f.Receivables
	case InvestmentsInSecurities:
		return &f.InvestmentsInSecurities
	case OtherCurrentAssets:
		return &f.OtherCurrentAssets
	case PropertyPlantEquipment:
		return &f.PropertyPlantEquipment
	case LandAndRealEstate:
		return &f.LandAndRealEstate
	case InvestmentsSubsidiaries:
		return &f.InvestmentsSubsidiaries
	case IntangibleAssets:
		return &f.IntangibleAssets
	case NonCurrentInvestments:
		return &f.NonCurrentInvestments
	case OtherNonCurrentAssets:
		return &f.OtherNonCurrentAssets
	case Borrowings:
		return &f.Borrowings
	case Payables:
		return &f.Payables
	case LeaseLiabilities:
		return &f.LeaseLiabilities
	case TaxLiabilities:
		return &f.TaxLiabilities
	case OtherCurrentLiabilities:
		return &f.OtherCurrentLiabilities
	case LongTermDebts:
		return &f.LongTermDebts
	case LongTermLeaseLiabilities:
		return &f.LongTermLeaseLiabilities
	case DeferredTaxLiabilities:
		return &f.DeferredTaxLiabilities
	case OtherNonCurrentLiabilities:
		return &f.OtherNonCurrentLiabilities
	case ShareCapital:
		return &f.ShareCapital
	case RetainedEarnings:
		return &f.RetainedEarnings
	case Reserves:
		return &f.Reserves
	case NonControllingInterests:
		return &f.NonControllingInterests
	case NetCashFromOperatingActivities:
		return &f.NetCashFromOperatingActivities
	case InvestmentsInPPE:
		return &f.InvestmentsInPPE
	case InvestmentsInSubsidiaries:
		return &f.InvestmentsInSubsidiaries
	case InvestmentsInAcquisitions:
		return &f.InvestmentsInAcquisitions
	default:
		return nil
	}
}

// Get returns the raw line item for m. It is absent for derived metrics.
func (f YearlyRawFacts) Get(m Metric) Number {
	if p := f.field(m); p != nil {
		return *p
	}
	return Absent
}

// Set updates the raw line item for m. Derived metrics cannot be set.
func (f *YearlyRawFacts) Set(m Metric, v Number) error {
	p := f.field(m)
	if p == nil {
		return fmt.Errorf("cannot set %s: derived metrics are computed", m)
	}
	*p = v
	return nil
}

// IsEmpty reports whether no line item has been entered.
func (f YearlyRawFacts) IsEmpty() bool {
	for _, m := range RawMetrics() {
		if f.Get(m).IsSet() {
			return false
		}
	}
	return true
}

// MarshalJSON writes line items in statement order and omits absent ones.
func (f YearlyRawFacts) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, m := range RawMetrics() {
		w.Optional(m.Name(), f.Get(m))
	}
	return w.MarshalJSON()
}

// UnmarshalJSON ignores unknown keys, including derived metrics written by older clients.
func (f *YearlyRawFacts) UnmarshalJSON(data []byte) error {
	type plain YearlyRawFacts
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid yearly facts: %w", err)
	}
	*f = YearlyRawFacts(p)
	return nil
}
