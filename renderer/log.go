package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/sparrishn/cashflow"
)

// LogMarkdown renders the most recent ledger entries, newest first. A limit
// of zero or less renders the whole ledger.
func LogMarkdown(p *cashflow.Player, limit int) string {
	entries := p.Ledger
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Transaction Log")

	if len(entries) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"When", "Type", "Amount", "Note"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.When().Format("2006-01-02 15:04"),
			e.Type.Label(),
			e.Amount.SignedString(),
			e.Note,
		})
	}
	doc.Table(table)
	return doc.String()
}

// ProfessionsMarkdown renders a profession catalog as a table.
func ProfessionsMarkdown(title string, presets cashflow.ProfessionPresets) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	if len(presets) == 0 {
		doc.PlainText("No professions saved.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Profession", "Salary", "Savings", "Mortgage"},
	}
	for _, preset := range presets {
		table.Rows = append(table.Rows, []string{
			preset.Name,
			preset.Profession.Salary.String(),
			preset.Profession.Savings.String(),
			preset.Profession.MortgageBalance.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
