// Package renderer turns player state into markdown reports for the terminal.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/sparrishn/cashflow"
)

// DashboardMarkdown renders the at-a-glance game view: phase, cash, and the
// monthly income statement summary.
func DashboardMarkdown(p *cashflow.Player) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — %s", p.Name, p.Profession.ProfessionName))
	doc.PlainText(fmt.Sprintf("Phase: **%s**", p.Phase.Label()))
	doc.PlainText("")

	passive := cashflow.PassiveIncomeMonthly(p)
	expenses := cashflow.TotalExpensesMonthly(p)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Cash"), md.Bold(p.Cash.String())},
		Rows: [][]string{
			{"Monthly Cashflow", cashflow.MonthlyCashflow(p).SignedString()},
			{"Passive Income", passive.String()},
			{"Total Expenses", expenses.String()},
			{"Children", strconv.Itoa(p.Children)},
		},
	})

	if p.Phase == cashflow.RatRace && expenses.IsPositive() {
		doc.PlainText(fmt.Sprintf("Passive income covers %s of the %s needed for the fast track.",
			passive.String(), expenses.String()))
	}

	return doc.String()
}
