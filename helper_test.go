package cashflow

import "testing"

// engineer is a representative profession used across tests.
func engineer() Profession {
	return Profession{
		ProfessionName:     "Engineer",
		Savings:            M(400),
		Salary:             M(4900),
		Taxes:              M(1050),
		OtherExpenses:      M(1090),
		PerChildExpense:    M(250),
		MortgageBalance:    M(75000),
		MortgagePayment:    M(700),
		StudentLoanBalance: M(12000),
		StudentLoanPayment: M(60),
		CarLoanBalance:     M(7000),
		CarLoanPayment:     M(140),
		RetailDebtBalance:  M(1500),
		RetailDebtPayment:  M(60),
	}
}

// newTestGame creates an in-memory game with no backing store.
func newTestGame() *Game {
	return NewGame(NewPlayer(), nil)
}

// assertMoney fails the test when got differs from want.
func assertMoney(t *testing.T, label string, got, want Money) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}
