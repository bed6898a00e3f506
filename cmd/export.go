package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/etnz/fundamentals/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	stockFlag
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the financial statements and evaluation as HTML" }
func (*exportCmd) Usage() string {
	return `fin export -id <id> [-o <file>]

  Writes a standalone HTML page with the financial statements, their trends
  and, when a snapshot exists, the investment evaluation.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.output, "o", "", "Output file, <id>.html by default")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	st := openStore()
	name := stockName(ctx, c.id)

	_, table, err := loadTable(ctx, st, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var md strings.Builder
	md.WriteString(renderer.TableMarkdown(table, newFormatter(), renderer.TableOptions{Title: name, Trends: true, HideEmpty: true}))

	evaluation, err := evaluationMarkdown(ctx, st, c.id, renderer.EvaluationRenderOptions{})
	if err != nil {
		log.Printf("evaluation skipped: %v", err)
	} else {
		md.WriteString("\n")
		md.WriteString(evaluation)
	}

	page, err := renderer.HTML(name, md.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	output := c.output
	if output == "" {
		output = fmt.Sprintf("%d.html", c.id)
	}
	if err := os.WriteFile(output, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "could not write %q: %v\n", output, err)
		return subcommands.ExitFailure
	}
	fmt.Println(output)
	return subcommands.ExitSuccess
}
