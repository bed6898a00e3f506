package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
)

type promptsCmd struct{}

func (*promptsCmd) Name() string     { return "prompts" }
func (*promptsCmd) Synopsis() string { return "list the AI commentary prompts" }
func (*promptsCmd) Usage() string {
	return `fin prompts

  Lists the prompts that 'fin comment' can run over a financial history, from
  the backend when configured, or the built-in library otherwise.
`
}

func (*promptsCmd) SetFlags(*flag.FlagSet) {}

func (*promptsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	commentator, err := newCommentator(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prompts, err := commentator.Prompts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not list prompts: %v\n", err)
		return subcommands.ExitFailure
	}
	var b strings.Builder
	b.WriteString("# Prompts\n\n")
	for _, id := range slices.Sorted(maps.Keys(prompts)) {
		fmt.Fprintf(&b, "* **%s**: %s\n", id, prompts[id])
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type commentCmd struct {
	stockFlag
}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "generate an AI commentary of the financial history" }
func (*commentCmd) Usage() string {
	return `fin comment -id <id> [<prompt>...]

  Runs the given prompts, all of them by default, over the financial history
  of the stock. The commentary is generated by the backend when configured,
  or by Gemini otherwise (GEMINI_API_KEY must be set).
`
}

func (c *commentCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *commentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	commentator, err := newCommentator(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prompts, err := commentator.Prompts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not list prompts: %v\n", err)
		return subcommands.ExitFailure
	}
	ids := f.Args()
	if len(ids) == 0 {
		ids = slices.Sorted(maps.Keys(prompts))
	}

	fd, err := openStore().LoadHistory(ctx, c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, id := range ids {
		text, err := commentator.Comment(ctx, c.id, id, fd.Data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prompt %s failed: %v\n", id, err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(fmt.Sprintf("## %s\n\n_%s_\n\n%s\n", id, prompts[id], text))
	}
	return status
}
