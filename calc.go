package cashflow

// This file is the derived calculation engine: pure functions from a player
// snapshot to monthly financial figures. No function here mutates anything.

// AssetMonthlyCashflow returns the signed monthly cash flow of a single
// asset: dividends for stocks, the stored monthly cash flow for financed
// holdings (negative for money-losing ones), zero for personal property.
func AssetMonthlyCashflow(a Asset) Money {
	switch v := a.(type) {
	case Stock:
		return v.DividendPerShare.Mul(v.NumShares)
	case Business:
		return v.CashFlowMonthly
	case RealEstate:
		return v.CashFlowMonthly
	default:
		return Money{}
	}
}

// AssetValue returns the current book value of an asset.
func AssetValue(a Asset) Money {
	switch v := a.(type) {
	case Stock:
		return v.SharePrice.Mul(v.NumShares)
	case Business:
		return v.Cost
	case RealEstate:
		return v.Cost
	case PersonalProperty:
		return v.Cost
	default:
		return Money{}
	}
}

// AssetLiability returns the outstanding debt attached to an asset.
func AssetLiability(a Asset) Money {
	switch v := a.(type) {
	case Business:
		return v.Liability
	case RealEstate:
		return v.Liability
	default:
		return Money{}
	}
}

// PassiveIncomeMonthly sums the positive cash flow contributions of all
// assets. Negative contributions count as expenses, not as income reduction.
func PassiveIncomeMonthly(p *Player) Money {
	var sum Money
	for _, a := range p.Assets {
		if cf := AssetMonthlyCashflow(a); cf.IsPositive() {
			sum = sum.Add(cf)
		}
	}
	return sum
}

// AssetExtraExpensesMonthly sums the negative cash flow contributions of all
// assets, as a positive expense figure.
func AssetExtraExpensesMonthly(p *Player) Money {
	var sum Money
	for _, a := range p.Assets {
		if cf := AssetMonthlyCashflow(a); cf.IsNegative() {
			sum = sum.Add(cf.Neg())
		}
	}
	return sum
}

// BaseExpensesMonthly is taxes + other expenses + per-child expenses + rent.
// Rent is the one fixed payment counted here: the other four fixed-debt
// payments flow through LiabilitiesMonthlyPayments via their mirror
// liabilities instead.
func BaseExpensesMonthly(p *Player) Money {
	children := p.Profession.PerChildExpense.Mul(Q(p.Children))
	return p.Profession.Taxes.
		Add(p.Profession.OtherExpenses).
		Add(children).
		Add(p.Profession.RentPayment)
}

// LiabilitiesMonthlyPayments sums the monthly payments across all
// liabilities, fixed mirrors and auto loans included.
func LiabilitiesMonthlyPayments(p *Player) Money {
	var sum Money
	for _, l := range p.Liabilities {
		sum = sum.Add(l.PaymentMonthly)
	}
	return sum
}

// TotalExpensesMonthly is the full monthly expense figure.
func TotalExpensesMonthly(p *Player) Money {
	return BaseExpensesMonthly(p).
		Add(AssetExtraExpensesMonthly(p)).
		Add(LiabilitiesMonthlyPayments(p))
}

// TotalIncomeMonthly is salary plus passive income.
func TotalIncomeMonthly(p *Player) Money {
	return p.Profession.Salary.Add(PassiveIncomeMonthly(p))
}

// MonthlyCashflow is total income minus total expenses; it may be negative.
func MonthlyCashflow(p *Player) Money {
	return TotalIncomeMonthly(p).Sub(TotalExpensesMonthly(p))
}

// ShouldEnterFastTrack reports whether passive income covers all monthly
// expenses. The state core evaluates it only while the player is in the rat
// race and has not been announced yet; the resulting transition is permanent.
func ShouldEnterFastTrack(p *Player) bool {
	return PassiveIncomeMonthly(p).GreaterThanOrEqual(TotalExpensesMonthly(p))
}
