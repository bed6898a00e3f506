// Package store persists the financial history and the investment snapshot of stocks.
package store

import (
	"context"

	"github.com/etnz/fundamentals"
)

// Store loads and saves the data of a stock.
//
// Absence is not an error: a stock without financial data loads as an empty
// history, and a stock without snapshot loads as a nil snapshot.
type Store interface {
	LoadHistory(ctx context.Context, stockID int64) (*fundamentals.FinancialData, error)
	SaveHistory(ctx context.Context, stockID int64, fd *fundamentals.FinancialData) error
	LoadSnapshot(ctx context.Context, stockID int64) (*fundamentals.InvestmentSnapshot, error)
	SaveSnapshot(ctx context.Context, stockID int64, s *fundamentals.InvestmentSnapshot) error
}
