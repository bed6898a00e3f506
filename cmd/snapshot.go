package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/date"
	"github.com/etnz/fundamentals/quote"
	"github.com/etnz/fundamentals/renderer"
	"github.com/etnz/fundamentals/store"
	"github.com/google/subcommands"
)

// updateSnapshot loads the snapshot of a stock, applies edit and saves it back.
func updateSnapshot(ctx context.Context, st store.Store, id int64, edit func(*fundamentals.InvestmentSnapshot) error) error {
	s, err := st.LoadSnapshot(ctx, id)
	if err != nil {
		return fmt.Errorf("could not load the investment snapshot of stock %d: %w", id, err)
	}
	if s == nil {
		s = new(fundamentals.InvestmentSnapshot)
	}
	if err := edit(s); err != nil {
		return err
	}
	if err := st.SaveSnapshot(ctx, id, s); err != nil {
		return fmt.Errorf("could not save the investment snapshot of stock %d: %w", id, err)
	}
	return nil
}

type snapshotCmd struct {
	stockFlag
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "display or update the investment snapshot" }
func (*snapshotCmd) Usage() string {
	return `fin snapshot -id <id> [<field>=<value>...]

  Without arguments, prints the investment snapshot of the stock as JSON.
  Otherwise updates the given fields:

    ` + strings.Join(fundamentals.SnapshotFields, ", ") + `

  See 'fin topic snapshot'.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	assignments, err := parseAssignments(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	st := openStore()

	if len(assignments) == 0 {
		s, err := st.LoadSnapshot(ctx, c.id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if s == nil {
			fmt.Fprintf(os.Stderr, "stock %d has no investment snapshot yet\n", c.id)
			return subcommands.ExitFailure
		}
		if err := fundamentals.EncodeSnapshot(os.Stdout, s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	err = updateSnapshot(ctx, st, c.id, func(s *fundamentals.InvestmentSnapshot) error {
		for _, a := range assignments {
			if err := s.SetField(a[0], a[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type quoteCmd struct {
	stockFlag
	ticker       string
	abbreviation string
	country      string
	cacheDir     string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "update the current share price from a quote service" }
func (*quoteCmd) Usage() string {
	return `fin quote -id <id> [-ticker <ticker>] [-abbr <abbreviation>] [-country <country>]

  Fetches the latest share price and stores it in the investment snapshot,
  dated today. Stocks listed in the United States are looked up by ticker,
  stocks listed in Malaysia by their Bursa abbreviation.
  With a backend, the ticker, abbreviation and country default to the stock's.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.ticker, "ticker", "", "Ticker of the stock")
	f.StringVar(&c.abbreviation, "abbr", "", "Exchange abbreviation of the stock")
	f.StringVar(&c.country, "country", "", "Country of listing: United States or Malaysia")
	f.StringVar(&c.cacheDir, "cache-dir", "", "Folder where quotes are cached for the day, the temporary folder by default")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s := quote.Stock{Ticker: c.ticker, Abbreviation: c.abbreviation, Country: c.country}
	if client := newClient(); client != nil && (s.Ticker == "" || s.Country == "") {
		info, err := client.Stock(ctx, c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read stock %d: %v\n", c.id, err)
			return subcommands.ExitFailure
		}
		s.Ticker = or(s.Ticker, info.Ticker)
		s.Abbreviation = or(s.Abbreviation, info.Abbreviation)
		s.Country = or(s.Country, info.Country)
	}

	q, err := quote.NewFetcher(c.cacheDir).Fetch(ctx, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	err = updateSnapshot(ctx, openStore(), c.id, func(snap *fundamentals.InvestmentSnapshot) error {
		snap.CurrentSharePrice = q.Price
		snap.Date = date.Today()
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s: %s\n", stockName(ctx, c.id), newFormatter().PerShare(q.Price))
	return subcommands.ExitSuccess
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

type evaluateCmd struct {
	stockFlag
	skipDecision bool
}

func (*evaluateCmd) Name() string     { return "evaluate" }
func (*evaluateCmd) Synopsis() string { return "evaluate the current share price against the history" }
func (*evaluateCmd) Usage() string {
	return `fin evaluate -id <id> [-skip-decision]

  Compares the investment snapshot with the financial history and grades the
  long term profit growth rate and dividend against the current P/E.
  See 'fin topic evaluation'.
`
}

func (c *evaluateCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.skipDecision, "skip-decision", false, "Do not display the stock type, action and reasoning")
}

func (c *evaluateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	md, err := evaluationMarkdown(ctx, openStore(), c.id, renderer.EvaluationRenderOptions{SkipDecision: c.skipDecision})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// evaluationMarkdown renders the evaluation of a stock.
func evaluationMarkdown(ctx context.Context, st store.Store, id int64, opts renderer.EvaluationRenderOptions) (string, error) {
	s, err := st.LoadSnapshot(ctx, id)
	if err != nil {
		return "", fmt.Errorf("could not load the investment snapshot of stock %d: %w", id, err)
	}
	if s == nil {
		return "", fmt.Errorf("stock %d has no investment snapshot, enter one with 'fin snapshot'", id)
	}
	_, table, err := loadTable(ctx, st, id)
	if err != nil {
		return "", err
	}
	e := fundamentals.Evaluate(*s, table)
	view := renderer.NewEvaluation(stockName(ctx, id), *s, e, newFormatter())
	return renderer.RenderEvaluation(view, opts), nil
}
