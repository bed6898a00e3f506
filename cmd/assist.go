package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundamentals/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	stockFlag
	research bool
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `fin assist -id <id> [-research=false] [<question>]

  Start an interactive session with the AI assistant about a stock. The
  assistant reads the financial statements, trends and evaluation of the stock.
  GEMINI_API_KEY must be set.
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.research, "research", true, "Let the assistant search the web for news about the company")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	initialPrompt := strings.Join(f.Args(), " ")

	st := openStore()
	_, table, err := loadTable(ctx, st, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	snapshot, err := st.LoadSnapshot(ctx, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	workbook := &agent.Workbook{
		Stock:    stockName(ctx, c.id),
		Table:    table,
		Snapshot: snapshot,
		Format:   newFormatter(),
	}
	experts := []*agent.Expert{agent.NewAnalyst(workbook)}
	if c.research {
		experts = append(experts, agent.NewResearcher())
	}
	a := agent.New(os.Stdout, os.Stdin, experts...)
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
