package api

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/fundamentals"
)

// promptsResponse is the envelope of every prompt endpoint, keyed by prompt ID.
type promptsResponse struct {
	Prompts map[string]string `json:"prompts"`
}

// Prompts returns the prompt library of the backend: prompt ID to prompt text.
func (c *Client) Prompts(ctx context.Context) (map[string]string, error) {
	var out promptsResponse
	if err := c.do(ctx, "GET", "/prompts", nil, &out); err != nil {
		return nil, err
	}
	return out.Prompts, nil
}

// Responses returns the commentary already generated for a stock, keyed by prompt ID.
func (c *Client) Responses(ctx context.Context, stockID int64) (map[string]string, error) {
	var out promptsResponse
	if err := c.do(ctx, "GET", fmt.Sprintf("/prompts/responses/%d", stockID), nil, &out); err != nil {
		return nil, err
	}
	return out.Prompts, nil
}

// Comment asks the backend to run a prompt over the financial history of a stock.
func (c *Client) Comment(ctx context.Context, stockID int64, promptID string, h fundamentals.FinancialHistory) (string, error) {
	in := fundamentals.FinancialData{StockID: stockID, Data: h}
	var out promptsResponse
	if err := c.do(ctx, "POST", "/prompts/"+promptID, in, &out); err != nil {
		return "", err
	}
	if text, ok := out.Prompts[promptID]; ok {
		return text, nil
	}
	// some prompts answer under another key, use the first one.
	keys := slices.Sorted(maps.Keys(out.Prompts))
	if len(keys) == 0 {
		return "", fmt.Errorf("no response for prompt %q", promptID)
	}
	return out.Prompts[keys[0]], nil
}
