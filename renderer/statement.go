package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/sparrishn/cashflow"
)

// StatementMarkdown renders the full financial statement: the monthly income
// statement and the balance sheet of assets and liabilities.
func StatementMarkdown(p *cashflow.Player) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Statement")

	doc.H2("Income")
	income := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Source", "Monthly"},
		Rows: [][]string{
			{"Salary", p.Profession.Salary.String()},
			{"Passive income", cashflow.PassiveIncomeMonthly(p).String()},
			{md.Bold("Total"), md.Bold(cashflow.TotalIncomeMonthly(p).String())},
		},
	}
	doc.Table(income)

	doc.H2("Expenses")
	expenses := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Expense", "Monthly"},
		Rows: [][]string{
			{"Taxes", p.Profession.Taxes.String()},
			{"Other expenses", p.Profession.OtherExpenses.String()},
		},
	}
	if p.Children > 0 {
		childTotal := p.Profession.PerChildExpense.Mul(cashflow.Q(p.Children))
		expenses.Rows = append(expenses.Rows,
			[]string{fmt.Sprintf("Children (%d)", p.Children), childTotal.String()})
	}
	if p.Profession.RentPayment.IsPositive() {
		expenses.Rows = append(expenses.Rows, []string{"Rent", p.Profession.RentPayment.String()})
	}
	if extra := cashflow.AssetExtraExpensesMonthly(p); extra.IsPositive() {
		expenses.Rows = append(expenses.Rows, []string{"Money-losing assets", extra.String()})
	}
	if payments := cashflow.LiabilitiesMonthlyPayments(p); payments.IsPositive() {
		expenses.Rows = append(expenses.Rows, []string{"Liability payments", payments.String()})
	}
	expenses.Rows = append(expenses.Rows,
		[]string{md.Bold("Total"), md.Bold(cashflow.TotalExpensesMonthly(p).String())})
	doc.Table(expenses)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold("Monthly Cashflow"),
			md.Bold(cashflow.MonthlyCashflow(p).SignedString()),
		},
	})

	if len(p.Assets) > 0 {
		doc.H2("Assets")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Asset", "Kind", "Value", "Cashflow"},
		}
		for _, a := range p.Assets {
			table.Rows = append(table.Rows, []string{
				a.AssetName(),
				a.Kind().Label(),
				cashflow.AssetValue(a).String(),
				cashflow.AssetMonthlyCashflow(a).SignedString(),
			})
		}
		doc.Table(table)
	}

	if len(p.Liabilities) > 0 {
		doc.H2("Liabilities")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Liability", "Principal", "Payment"},
		}
		for _, l := range p.Liabilities {
			table.Rows = append(table.Rows, []string{
				l.Name,
				l.Principal.String(),
				l.PaymentMonthly.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
