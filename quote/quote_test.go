package quote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestFetcher(t *testing.T, body string) (*Fetcher, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return &Fetcher{
		Client: srv.Client(),
		USURL:  srv.URL + "/us/TICKER/1D",
		MYURL:  srv.URL + "/my/KLSE-ABBREVIATION",
	}, &paths
}

func TestFetch(t *testing.T) {
	testCases := []struct {
		name     string
		stock    Stock
		body     string
		wantPath string
		want     float64
	}{
		{
			name:     "united states",
			stock:    Stock{Ticker: "AAPL", Country: "United States"},
			body:     `{"symbol":"AAPL","current_price":189.5,"market_status":"open"}`,
			wantPath: "/us/AAPL/1D",
			want:     189.5,
		},
		{
			name:     "malaysia",
			stock:    Stock{Ticker: "5031", Abbreviation: "timecom", Country: "Malaysia"},
			body:     `{"data":{"symbol":"KLSE-TIMECOM","p":4.86}}`,
			wantPath: "/my/KLSE-TIMECOM",
			want:     4.86,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, paths := newTestFetcher(t, tc.body)
			q, err := f.Fetch(context.Background(), tc.stock)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if got := q.Price.Float(); got != tc.want {
				t.Errorf("price = %v, want %v", got, tc.want)
			}
			if len(*paths) != 1 || (*paths)[0] != tc.wantPath {
				t.Errorf("requested %v, want %q", *paths, tc.wantPath)
			}
		})
	}
}

func TestFetch_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		stock   Stock
		body    string
		wantErr error
	}{
		{"unsupported country", Stock{Ticker: "AIR", Country: "France"}, `{}`, ErrUnsupportedCountry},
		{"other symbol", Stock{Ticker: "AAPL", Country: "united states"}, `{"symbol":"MSFT","current_price":400}`, ErrSymbolMismatch},
		{"no price", Stock{Ticker: "AAPL", Country: "united states"}, `{"symbol":"AAPL","current_price":null}`, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newTestFetcher(t, tc.body)
			_, err := f.Fetch(context.Background(), tc.stock)
			if err == nil {
				t.Fatal("Fetch should fail")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Fetch error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestDiskCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"symbol":"AAPL","current_price":10}`)
	}))
	defer srv.Close()

	f := &Fetcher{Client: daily(t.TempDir()), USURL: srv.URL + "/TICKER"}
	for i := 0; i < 2; i++ {
		if _, err := f.Fetch(context.Background(), Stock{Ticker: "AAPL", Country: "US"}); err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
	}
	if calls != 1 {
		t.Errorf("server called %d times, want 1", calls)
	}
}
