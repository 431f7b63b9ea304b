package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the at-a-glance game view" }
func (*dashboardCmd) Usage() string {
	return `cfh dashboard

  Shows the player's phase, cash, and monthly cashflow summary.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	printMarkdown(renderer.DashboardMarkdown(game.Player()))
	return subcommands.ExitSuccess
}

type statementCmd struct{}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show the full financial statement" }
func (*statementCmd) Usage() string {
	return `cfh statement

  Shows the monthly income statement and the balance sheet of assets and
  liabilities.
`
}
func (*statementCmd) SetFlags(*flag.FlagSet) {}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	printMarkdown(renderer.StatementMarkdown(game.Player()))
	return subcommands.ExitSuccess
}

type logCmd struct {
	limit int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "show the transaction log, newest first" }
func (*logCmd) Usage() string {
	return `cfh log [-n <count>]

  Shows the most recent ledger entries.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 50, "Number of entries to show (0 for all).")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	printMarkdown(renderer.LogMarkdown(game.Player(), c.limit))
	return subcommands.ExitSuccess
}
