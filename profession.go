package cashflow

// FixedKey identifies one of the profession's fixed-debt pairs that is
// mirrored into the liabilities collection. Rent is deliberately not a
// FixedKey: its payment is counted directly in the base expenses and never
// mirrored (see BaseExpensesMonthly).
type FixedKey string

const (
	KeyMortgage    FixedKey = "mortgage"
	KeyStudentLoan FixedKey = "studentLoan"
	KeyCarLoan     FixedKey = "carLoan"
	KeyRetailDebt  FixedKey = "retailDebt"
)

// fixedKeys in a stable order, for deterministic sync and display.
var fixedKeys = []FixedKey{KeyMortgage, KeyStudentLoan, KeyCarLoan, KeyRetailDebt}

// Label returns the display name of the fixed debt.
func (k FixedKey) Label() string {
	switch k {
	case KeyMortgage:
		return "Mortgage"
	case KeyStudentLoan:
		return "Student Loan"
	case KeyCarLoan:
		return "Car Loan"
	case KeyRetailDebt:
		return "Retail Debt"
	default:
		return string(k)
	}
}

// liabilityType classifies the mirror liability created for this debt.
func (k FixedKey) liabilityType() LiabilityType {
	if k == KeyRetailDebt {
		return LiabilityOther
	}
	return LiabilityBankLoan
}

// mirrorID is the stable liability identity used for the fixed mirror, so the
// sync routine can upsert rather than recreate.
func (k FixedKey) mirrorID() string {
	return "fixed:" + string(k)
}

// Profession is the player's income and expense profile, including the five
// fixed-debt (balance, monthly payment) pairs from the game sheet.
type Profession struct {
	ProfessionName     string `json:"professionName" yaml:"name"`
	Savings            Money  `json:"savings" yaml:"savings"`
	Salary             Money  `json:"salary" yaml:"salary"`
	Taxes              Money  `json:"taxes" yaml:"taxes"`
	OtherExpenses      Money  `json:"otherExpenses" yaml:"otherExpenses"`
	PerChildExpense    Money  `json:"perChildExpense" yaml:"perChildExpense"`
	MortgageBalance    Money  `json:"mortgageBalance" yaml:"mortgageBalance"`
	MortgagePayment    Money  `json:"mortgagePayment" yaml:"mortgagePayment"`
	RentBalance        Money  `json:"rentBalance" yaml:"rentBalance"`
	RentPayment        Money  `json:"rentPayment" yaml:"rentPayment"`
	StudentLoanBalance Money  `json:"studentLoanBalance" yaml:"studentLoanBalance"`
	StudentLoanPayment Money  `json:"studentLoanPayment" yaml:"studentLoanPayment"`
	CarLoanBalance     Money  `json:"carLoanBalance" yaml:"carLoanBalance"`
	CarLoanPayment     Money  `json:"carLoanPayment" yaml:"carLoanPayment"`
	RetailDebtBalance  Money  `json:"retailDebtBalance" yaml:"retailDebtBalance"`
	RetailDebtPayment  Money  `json:"retailDebtPayment" yaml:"retailDebtPayment"`
}

// DefaultProfession is the all-zero profile of a fresh game.
func DefaultProfession() Profession {
	return Profession{ProfessionName: "Custom"}
}

// FixedPair returns the (balance, payment) pair for a mirrored fixed debt.
func (p Profession) FixedPair(k FixedKey) (balance, payment Money) {
	switch k {
	case KeyMortgage:
		return p.MortgageBalance, p.MortgagePayment
	case KeyStudentLoan:
		return p.StudentLoanBalance, p.StudentLoanPayment
	case KeyCarLoan:
		return p.CarLoanBalance, p.CarLoanPayment
	case KeyRetailDebt:
		return p.RetailDebtBalance, p.RetailDebtPayment
	}
	return Money{}, Money{}
}

// setFixedBalance writes back an amortized balance for a mirrored fixed debt.
func (p *Profession) setFixedBalance(k FixedKey, balance Money) {
	switch k {
	case KeyMortgage:
		p.MortgageBalance = balance
	case KeyStudentLoan:
		p.StudentLoanBalance = balance
	case KeyCarLoan:
		p.CarLoanBalance = balance
	case KeyRetailDebt:
		p.RetailDebtBalance = balance
	}
}

// clearFixedPair zeroes both balance and payment of a mirrored fixed debt.
// Removing or paying off the mirror liability is the designated way to cancel
// a fixed debt.
func (p *Profession) clearFixedPair(k FixedKey) {
	p.setFixedBalance(k, Money{})
	switch k {
	case KeyMortgage:
		p.MortgagePayment = Money{}
	case KeyStudentLoan:
		p.StudentLoanPayment = Money{}
	case KeyCarLoan:
		p.CarLoanPayment = Money{}
	case KeyRetailDebt:
		p.RetailDebtPayment = Money{}
	}
}
