package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundamentals"
	"github.com/etnz/fundamentals/renderer"
	"github.com/google/subcommands"
)

type tableCmd struct {
	stockFlag
	sections string
	trends   bool
	all      bool
	asJSON   bool
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the financial statements of a stock" }
func (*tableCmd) Usage() string {
	return `fin table -id <id> [-sections <list>] [-trends] [-all] [-json]

  Displays the raw and derived metrics of every fiscal year, one section per
  statement. Sections without any entered figure are hidden unless -all is set.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.sections, "sections", "", "Comma separated statement sections to display, for instance 'Per Share,Equity'")
	f.BoolVar(&c.trends, "trends", false, "Add the percentage change next to every figure")
	f.BoolVar(&c.all, "all", false, "Display the sections without any entered figure")
	f.BoolVar(&c.asJSON, "json", false, "Print the derived table as JSON")
}

func (c *tableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	opts := renderer.TableOptions{
		Title:     stockName(ctx, c.id),
		Trends:    c.trends,
		HideEmpty: !c.all,
	}
	if c.sections != "" {
		for _, name := range strings.Split(c.sections, ",") {
			g, err := fundamentals.ParseGroup(strings.TrimSpace(name))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitUsageError
			}
			opts.Groups = append(opts.Groups, g)
		}
	}

	_, table, err := loadTable(ctx, openStore(), c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		if err := printJSON(table); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TableMarkdown(table, newFormatter(), opts))
	return subcommands.ExitSuccess
}

type trendCmd struct {
	stockFlag
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "display the trend of metrics over the fiscal years" }
func (*trendCmd) Usage() string {
	return `fin trend -id <id> <metric>...

  Displays, for each metric, its value per fiscal year with the percentage
  change, the average and the range. See 'fin topic trends'.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *trendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one metric is required, see 'fin topic metrics'")
		return subcommands.ExitUsageError
	}
	var metrics []fundamentals.Metric
	for _, name := range f.Args() {
		m, err := fundamentals.ParseMetric(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		metrics = append(metrics, m)
	}

	_, table, err := loadTable(ctx, openStore(), c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	for _, m := range metrics {
		b.WriteString(renderer.TrendMarkdown(table, m, newFormatter()))
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type chartCmd struct {
	stockFlag
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print the data of the history chart as JSON" }
func (*chartCmd) Usage() string {
	return `fin chart -id <id>

  Prints the share price and EPS series (left axis) and the revenue and profit
  series (right axis), one point per fiscal year, as JSON.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	_, table, err := loadTable(ctx, openStore(), c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := printJSON(table.Chart()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
