package api

import (
	"context"
	"fmt"
)

// Stock is a listed company followed by the user.
type Stock struct {
	ID            int64  `json:"id,omitempty"`
	Ticker        string `json:"ticker"`
	CompanyName   string `json:"company_name"`
	Abbreviation  string `json:"abbreviation"`
	Description   string `json:"description"`
	ExchangeID    *int64 `json:"exchange_id"`
	Sector        string `json:"sector"`
	Country       string `json:"country"`
	AIDescription string `json:"ai_description"`
}

// Exchange is a stock exchange.
type Exchange struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Country      string `json:"country"`
}

func (c *Client) Stocks(ctx context.Context) ([]Stock, error) {
	var out []Stock
	if err := c.do(ctx, "GET", "/stocks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stock(ctx context.Context, id int64) (*Stock, error) {
	var out Stock
	if err := c.do(ctx, "GET", fmt.Sprintf("/stocks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateStock(ctx context.Context, s Stock) (*Stock, error) {
	s.ID = 0
	var out Stock
	if err := c.do(ctx, "POST", "/stocks", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStock(ctx context.Context, id int64, s Stock) (*Stock, error) {
	s.ID = 0
	var out Stock
	if err := c.do(ctx, "PUT", fmt.Sprintf("/stocks/%d", id), s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStock(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/stocks/%d", id), nil, nil)
}

// AIDescription asks the backend to generate the description of a stock. It returns the
// updated stock.
func (c *Client) AIDescription(ctx context.Context, id int64) (*Stock, error) {
	var out Stock
	if err := c.do(ctx, "GET", fmt.Sprintf("/stocks/%d/ai_description", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Exchanges(ctx context.Context) ([]Exchange, error) {
	var out []Exchange
	if err := c.do(ctx, "GET", "/exchanges", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Exchange(ctx context.Context, id int64) (*Exchange, error) {
	var out Exchange
	if err := c.do(ctx, "GET", fmt.Sprintf("/exchanges/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateExchange(ctx context.Context, e Exchange) (*Exchange, error) {
	e.ID = 0
	var out Exchange
	if err := c.do(ctx, "POST", "/exchanges", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExchange(ctx context.Context, id int64, e Exchange) (*Exchange, error) {
	e.ID = 0
	var out Exchange
	if err := c.do(ctx, "PUT", fmt.Sprintf("/exchanges/%d", id), e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExchange(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/exchanges/%d", id), nil, nil)
}

// Countries returns the country names known by the backend.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	return c.names(ctx, "/reference/countries")
}

// Sectors returns the sector names known by the backend.
func (c *Client) Sectors(ctx context.Context) ([]string, error) {
	return c.names(ctx, "/reference/sectors")
}

func (c *Client) names(ctx context.Context, path string) ([]string, error) {
	var out []struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	names := make([]string, len(out))
	for i, n := range out {
		names[i] = n.Name
	}
	return names, nil
}
