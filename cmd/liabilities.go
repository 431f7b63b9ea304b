package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
)

// resolveLiability finds a liability by identity or by name (case-insensitive).
func resolveLiability(p *cashflow.Player, ref string) (cashflow.Liability, error) {
	if i := p.FindLiability(ref); i >= 0 {
		return p.Liabilities[i], nil
	}
	var matches []cashflow.Liability
	for _, l := range p.Liabilities {
		if strings.EqualFold(l.Name, ref) {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 0:
		return cashflow.Liability{}, fmt.Errorf("no liability named %q", ref)
	case 1:
		return matches[0], nil
	default:
		return cashflow.Liability{}, fmt.Errorf("%d liabilities named %q, use the id instead", len(matches), ref)
	}
}

type borrowCmd struct {
	principal string
	payment   string
	typ       string
	cash      bool
}

func (*borrowCmd) Name() string     { return "borrow" }
func (*borrowCmd) Synopsis() string { return "record a new debt" }
func (*borrowCmd) Usage() string {
	return `cfh borrow -principal <amount> [-payment <amount>] [-type bank_loan|other] [-cash=false] <name>

  Records a debt. With -cash (the default) the principal is credited to the
  game cash.

Usage Examples:
$ cfh borrow -principal 5000 -payment 100 "Boat Loan"
`
}

func (c *borrowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.principal, "principal", "", "Amount borrowed.")
	f.StringVar(&c.payment, "payment", "0", "Monthly payment.")
	f.StringVar(&c.typ, "type", "bank_loan", "Kind of debt: bank_loan or other.")
	f.BoolVar(&c.cash, "cash", true, "Credit the principal to the game cash.")
}

func (c *borrowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ := cashflow.LiabilityBankLoan
	if c.typ == "other" {
		typ = cashflow.LiabilityOther
	}
	game, _ := openGame()
	name := strings.Join(f.Args(), " ")
	err := game.AddLiability(name, typ,
		cashflow.ParseAmount(c.principal),
		cashflow.ParseNonNegativeAmount(c.payment),
		c.cash)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Borrowed for %s. Cash: %s\n", name, game.Player().Cash)
	return subcommands.ExitSuccess
}

type removeLiabilityCmd struct{}

func (*removeLiabilityCmd) Name() string     { return "remove-liability" }
func (*removeLiabilityCmd) Synopsis() string { return "drop a debt without paying it" }
func (*removeLiabilityCmd) Usage() string {
	return `cfh remove-liability <name or id>

  Removes a debt without any cash movement. Removing a fixed debt (mortgage,
  student loan, car loan, retail debt) clears it from the profession too.
`
}
func (*removeLiabilityCmd) SetFlags(*flag.FlagSet) {}

func (c *removeLiabilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	liability, err := resolveLiability(game.Player(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := game.RemoveLiability(liability.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s.\n", liability.Name)
	return subcommands.ExitSuccess
}

type payoffCmd struct{}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "settle a debt in full from cash" }
func (*payoffCmd) Usage() string {
	return `cfh payoff <name or id>

  Pays the full principal from cash. Never borrows: the money must be on
  hand.
`
}
func (*payoffCmd) SetFlags(*flag.FlagSet) {}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	liability, err := resolveLiability(game.Player(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := game.PayOffLiability(liability.ID); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Paid off %s. Cash: %s\n", liability.Name, game.Player().Cash)
	return subcommands.ExitSuccess
}
