// Package quote fetches the current share price of a stock from public quote services.
package quote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundamentals"
)

const (
	// TICKER is replaced by the stock ticker, e.g. AAPL.
	usQuoteURL = "https://production.dataviz.cnn.io/charting/instruments/latest/report_range/market_status/TICKER/1D/REGULAR"
	// ABBREVIATION is replaced by the Bursa Malaysia short name, e.g. TIMECOM (ticker 5031).
	myQuoteURL = "https://stockanalysis.com/api/quotes/a/KLSE-ABBREVIATION"
)

var (
	// ErrUnsupportedCountry is returned for stocks listed in a country without quote service.
	ErrUnsupportedCountry = errors.New("no quote service for country")
	// ErrSymbolMismatch is returned when the service answered for another symbol.
	ErrSymbolMismatch = errors.New("quote is for another symbol")
)

// Stock identifies a listed stock.
type Stock struct {
	Ticker       string
	Abbreviation string
	Country      string
}

// Quote is a share price fetched at a given time.
type Quote struct {
	Price     fundamentals.Number
	FetchedAt time.Time
}

// Fetcher retrieves quotes. Its zero value uses the public services without cache.
type Fetcher struct {
	Client *http.Client
	// USURL and MYURL override the service addresses, their placeholders are kept.
	USURL, MYURL string
}

// NewFetcher returns a Fetcher that caches responses in cacheDir (os.TempDir() if empty)
// for the day.
func NewFetcher(cacheDir string) *Fetcher {
	return &Fetcher{Client: daily(cacheDir)}
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Fetch returns the latest price of the stock.
func (f *Fetcher) Fetch(ctx context.Context, s Stock) (Quote, error) {
	switch strings.ToLower(strings.TrimSpace(s.Country)) {
	case "united states", "us", "usa":
		addr := strings.Replace(or(f.USURL, usQuoteURL), "TICKER", s.Ticker, 1)
		return f.fetch(ctx, addr, "$.symbol", s.Ticker, "$.current_price")
	case "malaysia", "my":
		abbr := strings.ToUpper(s.Abbreviation)
		addr := strings.Replace(or(f.MYURL, myQuoteURL), "ABBREVIATION", abbr, 1)
		return f.fetch(ctx, addr, "$.data.symbol", "KLSE-"+abbr, "$.data.p")
	default:
		return Quote{}, fmt.Errorf("%w: %q", ErrUnsupportedCountry, s.Country)
	}
}

// fetch reads the price at pricePath, after checking that symbolPath holds symbol.
func (f *Fetcher) fetch(ctx context.Context, addr, symbolPath, symbol, pricePath string) (Quote, error) {
	var jobj any
	if err := jwget(ctx, f.client(), addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	got, err := jsonpath.Get(symbolPath, jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("error parsing %q: %q %w", symbol, symbolPath, err)
	}
	if gotSymbol, _ := got.(string); !strings.EqualFold(gotSymbol, symbol) {
		return Quote{}, fmt.Errorf("%w: want %q got %v", ErrSymbolMismatch, symbol, got)
	}

	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return Quote{}, fmt.Errorf("error parsing %q: %q %w", symbol, pricePath, err)
	}
	// jsonpath may return a list of one answer
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return Quote{}, fmt.Errorf("error parsing %q: %q has no price: %v", symbol, pricePath, jval)
	}
	return Quote{Price: fundamentals.N(val), FetchedAt: time.Now()}, nil
}
