package renderer

import (
	"strings"
	"testing"

	"github.com/sparrishn/cashflow"
)

func testPlayer(t *testing.T) *cashflow.Player {
	t.Helper()
	g := cashflow.NewGame(cashflow.NewPlayer(), nil)
	prof := cashflow.Profession{
		ProfessionName:  "Engineer",
		Savings:         cashflow.M(400),
		Salary:          cashflow.M(4900),
		Taxes:           cashflow.M(1050),
		OtherExpenses:   cashflow.M(1090),
		PerChildExpense: cashflow.M(250),
		MortgageBalance: cashflow.M(75000),
		MortgagePayment: cashflow.M(700),
	}
	if err := g.SetProfession(prof, true); err != nil {
		t.Fatalf("SetProfession() error = %v", err)
	}
	if err := g.BuyStock("ACME", cashflow.M(10), cashflow.Q(100), cashflow.M(0.1), false); err != nil {
		t.Fatalf("BuyStock() error = %v", err)
	}
	return g.Player()
}

func TestDashboardMarkdown(t *testing.T) {
	got := DashboardMarkdown(testPlayer(t))
	for _, want := range []string{"Engineer", "rat race", "Monthly Cashflow", "Passive Income"} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard missing %q:\n%s", want, got)
		}
	}
}

func TestStatementMarkdown(t *testing.T) {
	got := StatementMarkdown(testPlayer(t))
	for _, want := range []string{
		"# Financial Statement",
		"## Income",
		"## Expenses",
		"## Assets",
		"## Liabilities",
		"ACME",
		"Mortgage",
		"Liability payments",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("statement missing %q:\n%s", want, got)
		}
	}
}

func TestLogMarkdown(t *testing.T) {
	p := testPlayer(t)
	got := LogMarkdown(p, 50)
	for _, want := range []string{"# Transaction Log", "buy asset", "set profession"} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}

	// The limit truncates to the most recent entries.
	limited := LogMarkdown(p, 1)
	if strings.Contains(limited, "set profession") {
		t.Errorf("limited log still shows the oldest entry:\n%s", limited)
	}
	if !strings.Contains(limited, "buy asset") {
		t.Errorf("limited log dropped the newest entry:\n%s", limited)
	}

	empty := LogMarkdown(cashflow.NewPlayer(), 0)
	if !strings.Contains(empty, "No transactions yet.") {
		t.Errorf("empty log rendering:\n%s", empty)
	}
}

func TestProfessionsMarkdown(t *testing.T) {
	got := ProfessionsMarkdown("Builtin Professions", cashflow.BuiltinProfessions())
	for _, want := range []string{"# Builtin Professions", "Engineer", "Doctor"} {
		if !strings.Contains(got, want) {
			t.Errorf("professions table missing %q:\n%s", want, got)
		}
	}
	if empty := ProfessionsMarkdown("Saved", nil); !strings.Contains(empty, "No professions saved.") {
		t.Errorf("empty catalog rendering:\n%s", empty)
	}
}
