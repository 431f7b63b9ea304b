package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
	"github.com/sparrishn/cashflow/renderer"
)

type professionCmd struct {
	preset  string
	savings bool

	name           string
	salary         string
	taxes          string
	other          string
	perChild       string
	cashSavings    string
	mortgage       string
	mortgagePay    string
	rent           string
	studentLoan    string
	studentLoanPay string
	carLoan        string
	carLoanPay     string
	retailDebt     string
	retailDebtPay  string
}

func (*professionCmd) Name() string     { return "profession" }
func (*professionCmd) Synopsis() string { return "set the player's profession" }
func (*professionCmd) Usage() string {
	return `cfh profession -preset <name>
cfh profession -name <name> -salary <amount> [-taxes ...] [...]

  Sets the profession from a saved or builtin preset, or builds one from
  flags. A profession built from flags is saved as a preset under its name.
  By default cash is reset to the profession's savings; use -savings=false
  to keep the current cash.

Usage Examples:
$ cfh profession -preset Engineer
$ cfh profession -name Plumber -salary 4000 -taxes 800 -other 900
`
}

func (c *professionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.preset, "preset", "", "Use a saved or builtin profession by name.")
	f.BoolVar(&c.savings, "savings", true, "Reset cash to the profession's savings.")

	f.StringVar(&c.name, "name", "", "Profession name.")
	f.StringVar(&c.salary, "salary", "0", "Monthly salary.")
	f.StringVar(&c.taxes, "taxes", "0", "Monthly taxes.")
	f.StringVar(&c.other, "other", "0", "Other monthly expenses.")
	f.StringVar(&c.perChild, "per-child", "0", "Monthly expense per child.")
	f.StringVar(&c.cashSavings, "start-savings", "0", "Starting savings.")
	f.StringVar(&c.mortgage, "mortgage", "0", "Mortgage balance.")
	f.StringVar(&c.mortgagePay, "mortgage-payment", "0", "Mortgage monthly payment.")
	f.StringVar(&c.rent, "rent", "0", "Monthly rent.")
	f.StringVar(&c.studentLoan, "student-loan", "0", "Student loan balance.")
	f.StringVar(&c.studentLoanPay, "student-loan-payment", "0", "Student loan monthly payment.")
	f.StringVar(&c.carLoan, "car-loan", "0", "Car loan balance.")
	f.StringVar(&c.carLoanPay, "car-loan-payment", "0", "Car loan monthly payment.")
	f.StringVar(&c.retailDebt, "retail-debt", "0", "Retail debt balance.")
	f.StringVar(&c.retailDebtPay, "retail-debt-payment", "0", "Retail debt monthly payment.")
}

func (c *professionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, store := openGame()

	var prof cashflow.Profession
	switch {
	case c.preset != "":
		saved := store.LoadProfessionPresets()
		if i := saved.FindByName(c.preset); i >= 0 {
			prof = saved[i].Profession
			break
		}
		builtin := cashflow.BuiltinProfessions()
		i := builtin.FindByName(c.preset)
		if i < 0 {
			fmt.Fprintf(os.Stderr, "Error: no profession preset named %q, see 'cfh professions'\n", c.preset)
			return subcommands.ExitFailure
		}
		prof = builtin[i].Profession
	case c.name != "":
		prof = cashflow.Profession{
			ProfessionName:     c.name,
			Savings:            cashflow.ParseNonNegativeAmount(c.cashSavings),
			Salary:             cashflow.ParseNonNegativeAmount(c.salary),
			Taxes:              cashflow.ParseNonNegativeAmount(c.taxes),
			OtherExpenses:      cashflow.ParseNonNegativeAmount(c.other),
			PerChildExpense:    cashflow.ParseNonNegativeAmount(c.perChild),
			MortgageBalance:    cashflow.ParseNonNegativeAmount(c.mortgage),
			MortgagePayment:    cashflow.ParseNonNegativeAmount(c.mortgagePay),
			RentPayment:        cashflow.ParseNonNegativeAmount(c.rent),
			StudentLoanBalance: cashflow.ParseNonNegativeAmount(c.studentLoan),
			StudentLoanPayment: cashflow.ParseNonNegativeAmount(c.studentLoanPay),
			CarLoanBalance:     cashflow.ParseNonNegativeAmount(c.carLoan),
			CarLoanPayment:     cashflow.ParseNonNegativeAmount(c.carLoanPay),
			RetailDebtBalance:  cashflow.ParseNonNegativeAmount(c.retailDebt),
			RetailDebtPayment:  cashflow.ParseNonNegativeAmount(c.retailDebtPay),
		}
		// A hand-built profession is worth keeping for the next game.
		saved := store.LoadProfessionPresets()
		saved.Upsert(prof.ProfessionName, prof)
		if err := store.SaveProfessionPresets(saved); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not save the profession preset:", err)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: use -preset <name> or describe the profession with -name and flags")
		return subcommands.ExitFailure
	}

	if err := game.SetProfession(prof, c.savings); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Now playing as %s. Cash: %s\n", prof.ProfessionName, game.Player().Cash)
	return subcommands.ExitSuccess
}

type professionsCmd struct{}

func (*professionsCmd) Name() string     { return "professions" }
func (*professionsCmd) Synopsis() string { return "list builtin and saved professions" }
func (*professionsCmd) Usage() string {
	return `cfh professions

  Lists the professions shipped with the game and the ones you saved.
`
}
func (*professionsCmd) SetFlags(*flag.FlagSet) {}

func (c *professionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	printMarkdown(renderer.ProfessionsMarkdown("Builtin Professions", cashflow.BuiltinProfessions()))
	printMarkdown(renderer.ProfessionsMarkdown("Saved Professions", store.LoadProfessionPresets()))
	return subcommands.ExitSuccess
}

type professionRmCmd struct{}

func (*professionRmCmd) Name() string     { return "profession-rm" }
func (*professionRmCmd) Synopsis() string { return "delete a saved profession preset" }
func (*professionRmCmd) Usage() string {
	return `cfh profession-rm <name>

  Deletes one of your saved profession presets. Builtins cannot be deleted.
`
}
func (*professionRmCmd) SetFlags(*flag.FlagSet) {}

func (c *professionRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	name := strings.Join(f.Args(), " ")
	saved := store.LoadProfessionPresets()
	i := saved.FindByName(name)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: no saved profession named %q\n", name)
		return subcommands.ExitFailure
	}
	saved.Delete(i)
	if err := store.SaveProfessionPresets(saved); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted profession %s.\n", name)
	return subcommands.ExitSuccess
}
