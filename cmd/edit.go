package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/store"
	"github.com/google/subcommands"
)

// updateHistory loads the history of a stock, applies edit and saves it back.
func updateHistory(ctx context.Context, st store.Store, id int64, edit func(fundamentals.FinancialHistory) error) error {
	fd, err := st.LoadHistory(ctx, id)
	if err != nil {
		return fmt.Errorf("could not load the financial history of stock %d: %w", id, err)
	}
	if err := edit(fd.Data); err != nil {
		return err
	}
	fd.StockID = id
	if err := st.SaveHistory(ctx, id, fd); err != nil {
		return fmt.Errorf("could not save the financial history of stock %d: %w", id, err)
	}
	return nil
}

type yearCmd struct {
	stockFlag
	add      string
	remove   string
	rename   string
	to       string
	defaults int
}

func (*yearCmd) Name() string     { return "year" }
func (*yearCmd) Synopsis() string { return "list, add, remove or rename fiscal years" }
func (*yearCmd) Usage() string {
	return `fin year -id <id> [-add <year> | -remove <year> | -rename <year> -to <year> | -defaults <last year>]

  Without action flag, lists the fiscal years of the stock, oldest first.
  Fiscal years are labels sorted alphabetically, use their year end date
  (2024-12-31) or just the year (2024).
  -defaults adds the four fiscal years ending on December 31st up to <last year>.
`
}

func (c *yearCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.add, "add", "", "Add an empty fiscal year")
	f.StringVar(&c.remove, "remove", "", "Remove a fiscal year and all its figures")
	f.StringVar(&c.rename, "rename", "", "Rename a fiscal year, the new name is given by -to")
	f.StringVar(&c.to, "to", "", "New name of the fiscal year renamed with -rename")
	f.IntVar(&c.defaults, "defaults", 0, "Add four fiscal years ending on December 31st, the last one being this year")
}

func (c *yearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	st := openStore()

	var edit func(fundamentals.FinancialHistory) error
	switch {
	case c.add != "":
		edit = func(h fundamentals.FinancialHistory) error { return h.Add(c.add) }
	case c.remove != "":
		edit = func(h fundamentals.FinancialHistory) error { return h.Remove(c.remove) }
	case c.rename != "":
		if c.to == "" {
			fmt.Fprintln(os.Stderr, "-rename requires the new name with -to")
			return subcommands.ExitUsageError
		}
		edit = func(h fundamentals.FinancialHistory) error { return h.Rename(c.rename, c.to) }
	case c.defaults != 0:
		edit = func(h fundamentals.FinancialHistory) error {
			for year := range fundamentals.NewDefaultHistory(c.defaults) {
				if _, ok := h.Get(year); ok {
					continue
				}
				if err := h.Add(year); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if edit != nil {
		if err := updateHistory(ctx, st, c.id, edit); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fd, err := st.LoadHistory(ctx, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, y := range fd.Data.Years() {
		fmt.Println(y)
	}
	return subcommands.ExitSuccess
}

type setCmd struct {
	stockFlag
	year string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "enter raw figures of a fiscal year" }
func (*setCmd) Usage() string {
	return `fin set -id <id> -year <year> <metric>=<value>...

  Sets raw figures of an existing fiscal year. An empty value clears the figure.
  Derived metrics cannot be set, they are computed. See 'fin topic metrics'.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.year, "year", "", "The fiscal year to update")
}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.year == "" {
		fmt.Fprintln(os.Stderr, "a fiscal year is required, use -year")
		return subcommands.ExitUsageError
	}
	assignments, err := parseAssignments(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	type fact struct {
		metric fundamentals.Metric
		value  fundamentals.Number
	}
	var facts []fact
	for _, a := range assignments {
		m, err := fundamentals.ParseMetric(a[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		v, err := fundamentals.ParseNumber(a[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid value for %s: %v\n", m, err)
			return subcommands.ExitUsageError
		}
		facts = append(facts, fact{m, v})
	}

	err = updateHistory(ctx, openStore(), c.id, func(h fundamentals.FinancialHistory) error {
		for _, x := range facts {
			if err := h.Set(c.year, x.metric, x.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	log.Printf("updated %d figure(s) of %s for stock %d", len(facts), c.year, c.id)
	return subcommands.ExitSuccess
}
