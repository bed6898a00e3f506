// Package fundamentals computes valuation figures from the financial statements of a stock.
//
// It is a stateless engine. The raw line items entered for each fiscal year
// (YearlyRawFacts) are turned into derived metrics (DeriveYear): margins, per
// share figures, balance sheet totals, net asset positions and ratios. A
// FinancialHistory of several years derives into a Table, which computes the
// year over year change of any Metric, with the compound annual growth rate
// reported for the earliest year, as well as multi-year averages and ranges.
// Finally, Evaluate compares an InvestmentSnapshot of the trailing four
// quarters with that Table.
//
// Missing figures are represented by an absent Number. Ratios whose divisor is
// zero or absent are 0: no function in this package returns NaN, Inf or an
// error for numeric reasons.
//
// Persistence, the backend client, quotes, AI commentary and rendering live in
// sub packages and in the `fin` command-line tool.
package fundamentals
