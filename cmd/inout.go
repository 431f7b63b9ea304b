package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
)

type paycheckCmd struct{}

func (*paycheckCmd) Name() string     { return "paycheck" }
func (*paycheckCmd) Synopsis() string { return "collect a paycheck and amortize every debt" }
func (*paycheckCmd) Usage() string {
	return `cfh paycheck

  Adds the monthly cashflow to cash and amortizes every debt by its monthly
  payment. Collect as often as the game calls for; there is no calendar.
`
}
func (*paycheckCmd) SetFlags(*flag.FlagSet) {}

func (c *paycheckCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	amount := cashflow.MonthlyCashflow(game.Player())
	if err := game.CollectPaycheck(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Collected %s. Cash: %s\n", amount.SignedString(), game.Player().Cash)
	return subcommands.ExitSuccess
}

type receiveCmd struct{}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "receive money outside the statement" }
func (*receiveCmd) Usage() string {
	return `cfh receive <amount>

  Credits an amount to cash, for windfalls like lottery cards.
`
}
func (*receiveCmd) SetFlags(*flag.FlagSet) {}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	if err := game.Receive(cashflow.ParseAmount(f.Arg(0))); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Received. Cash: %s\n", game.Player().Cash)
	return subcommands.ExitSuccess
}

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "pay money outside the statement" }
func (*payCmd) Usage() string {
	return `cfh pay <amount>

  Debits an amount from cash, borrowing automatically when short.
`
}
func (*payCmd) SetFlags(*flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	if err := game.Pay(cashflow.ParseAmount(f.Arg(0))); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Paid. Cash: %s\n", game.Player().Cash)
	return subcommands.ExitSuccess
}
