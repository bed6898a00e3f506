package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/store"
)

var _ store.Store = (*Client)(nil)

// LoadHistory fetches the financial data of a stock.
func (c *Client) LoadHistory(ctx context.Context, stockID int64) (*fundamentals.FinancialData, error) {
	var fd fundamentals.FinancialData
	err := c.do(ctx, "GET", fmt.Sprintf("/stocks/%d/financials", stockID), nil, &fd)
	if errors.Is(err, ErrNotFound) {
		return &fundamentals.FinancialData{StockID: stockID, Data: fundamentals.FinancialHistory{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if fd.Data == nil {
		fd.Data = fundamentals.FinancialHistory{}
	}
	fd.StockID = stockID
	return &fd, nil
}

// SaveHistory uploads the raw facts of a stock. The backend stamps the update time.
func (c *Client) SaveHistory(ctx context.Context, stockID int64, fd *fundamentals.FinancialData) error {
	in := fundamentals.FinancialData{StockID: stockID, Data: fd.Data}
	return c.do(ctx, "POST", fmt.Sprintf("/stocks/%d/financials", stockID), in, nil)
}

// LoadSnapshot fetches the investment summary of a stock, nil if there is none.
func (c *Client) LoadSnapshot(ctx context.Context, stockID int64) (*fundamentals.InvestmentSnapshot, error) {
	var s *fundamentals.InvestmentSnapshot
	err := c.do(ctx, "GET", fmt.Sprintf("/investment_summary/%d", stockID), nil, &s)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return s, err
}

// SaveSnapshot uploads the investment summary of a stock.
func (c *Client) SaveSnapshot(ctx context.Context, stockID int64, s *fundamentals.InvestmentSnapshot) error {
	return c.do(ctx, "POST", fmt.Sprintf("/investment_summary/%d", stockID), s, nil)
}
