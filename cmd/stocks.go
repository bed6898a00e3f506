package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/fundamentals/store"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list the followed stocks" }
func (*stocksCmd) Usage() string {
	return `fin stocks

  Lists the stocks known by the backend, or the stock folders of the local
  data directory.
`
}

func (*stocksCmd) SetFlags(*flag.FlagSet) {}

func (*stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table := md.TableSet{
		Header:    []string{"ID", "Ticker", "Company", "Country"},
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
	}

	if client := newClient(); client != nil {
		stocks, err := client.Stocks(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, s := range stocks {
			table.Rows = append(table.Rows, []string{strconv.FormatInt(s.ID, 10), s.Ticker, s.CompanyName, s.Country})
		}
	} else {
		ids, err := store.NewDir(setting(dataDir, EnvDataDir, defaultDataDir)).Stocks()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, id := range ids {
			table.Rows = append(table.Rows, []string{strconv.FormatInt(id, 10), "", "", ""})
		}
	}

	if len(table.Rows) == 0 {
		fmt.Println("No stock yet.")
		return subcommands.ExitSuccess
	}
	var out strings.Builder
	if err := md.NewMarkdown(&out).H1("Stocks").Table(table).Build(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(out.String())
	return subcommands.ExitSuccess
}
