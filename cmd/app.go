// Package cmd implements the fin command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/agent"
	"github.com/etnz/fundamentals/api"
	"github.com/etnz/fundamentals/renderer"
	"github.com/etnz/fundamentals/store"
	"github.com/google/subcommands"
)

// Commands lists all the fin subcommands.
var Commands = []subcommands.Command{
	&tableCmd{},
	&trendCmd{},
	&chartCmd{},
	&yearCmd{},
	&setCmd{},
	&snapshotCmd{},
	&quoteCmd{},
	&evaluateCmd{},
	&exportCmd{},
	&stocksCmd{},
	&promptsCmd{},
	&commentCmd{},
	&AssistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Flags default to empty so that the environment, possibly loaded from .env, is read when they are used.

var (
	dataDir  = flag.String("data-dir", "", "Folder of the local stock files (env "+EnvDataDir+", default "+defaultDataDir+")")
	apiURL   = flag.String("api-url", "", "Base URL of the backend, the local folder is used when empty (env "+EnvAPIURL+")")
	apiToken = flag.String("token", "", "Bearer token for the backend (env "+EnvToken+")")
	currency = flag.String("currency", "", "Currency of the amounts (env "+EnvCurrency+", default "+renderer.DefaultCurrency+")")
	Verbose  = flag.Bool("v", false, "Print diagnostic logs (env "+EnvVerbose+")")
)

const defaultDataDir = "stocks"

// setting returns the flag value, or the environment variable, or def.
func setting(value *string, env, def string) string {
	if *value != "" {
		return *value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// IsVerbose reports whether diagnostic logs are requested.
func IsVerbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// newClient returns the backend client, or nil when no backend is configured.
func newClient() *api.Client {
	u := setting(apiURL, EnvAPIURL, "")
	if u == "" {
		return nil
	}
	return api.New(u, setting(apiToken, EnvToken, ""))
}

// openStore returns the backend when configured, otherwise the local folder.
func openStore() store.Store {
	if c := newClient(); c != nil {
		return c
	}
	return store.NewDir(setting(dataDir, EnvDataDir, defaultDataDir))
}

func newFormatter() renderer.Formatter {
	return renderer.Formatter{Currency: setting(currency, EnvCurrency, renderer.DefaultCurrency)}
}

var _ agent.Commentator = (*api.Client)(nil)

// newCommentator returns the backend commentary when configured, Gemini otherwise.
func newCommentator(ctx context.Context) (agent.Commentator, error) {
	if c := newClient(); c != nil {
		return c, nil
	}
	return agent.NewGemini(ctx, newFormatter())
}

// stockFlag is the -id flag shared by all commands working on a single stock.
type stockFlag struct {
	id int64
}

func (s *stockFlag) register(f *flag.FlagSet) {
	f.Int64Var(&s.id, "id", 0, "ID of the stock")
}

func (s *stockFlag) check() error {
	if s.id <= 0 {
		return errors.New("a stock ID is required, use -id")
	}
	return nil
}

// stockName returns a display name for the stock, from the backend when available.
func stockName(ctx context.Context, id int64) string {
	if c := newClient(); c != nil {
		if s, err := c.Stock(ctx, id); err == nil && s.Ticker != "" {
			return s.Ticker
		}
	}
	return fmt.Sprintf("stock %d", id)
}

// parseAssignments splits "name=value" arguments, keeping their order.
func parseAssignments(args []string) ([][2]string, error) {
	var list [][2]string
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q, expected <name>=<value>", arg)
		}
		list = append(list, [2]string{strings.TrimSpace(name), value})
	}
	return list, nil
}

// loadTable loads the history of a stock and derives it.
func loadTable(ctx context.Context, st store.Store, id int64) (*fundamentals.FinancialData, *fundamentals.Table, error) {
	fd, err := st.LoadHistory(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load the financial history of stock %d: %w", id, err)
	}
	return fd, fd.Data.Derive(), nil
}
