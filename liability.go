package cashflow

import "github.com/google/uuid"

// LiabilityType classifies a debt for display.
type LiabilityType string

const (
	LiabilityBankLoan LiabilityType = "bank_loan"
	LiabilityOther    LiabilityType = "other"
)

// Origin records how a liability came to exist.
type Origin string

const (
	// OriginManual liabilities are entered by the player.
	OriginManual Origin = "manual"
	// OriginAuto liabilities are overdraft loans taken out by the system to
	// cover a cash shortfall.
	OriginAuto Origin = "auto"
	// OriginFixed liabilities mirror a profession fixed-debt pair; they are
	// created and destroyed only by the sync routine.
	OriginFixed Origin = "fixed"
)

// Liability is a single debt with an outstanding principal and a monthly
// payment.
type Liability struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           LiabilityType `json:"type"`
	Principal      Money         `json:"principal"`
	PaymentMonthly Money         `json:"paymentMonthly"`
	AutoUpdateCash bool          `json:"autoUpdateCash"`
	CreatedAt      int64         `json:"createdAt"` // unix milliseconds
	Origin         Origin        `json:"origin,omitempty"`
	FixedKey       FixedKey      `json:"fixedKey,omitempty"` // set iff Origin == OriginFixed
}

func newLiability(name string, typ LiabilityType, principal, payment Money, autoCash bool, origin Origin) Liability {
	return Liability{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           typ,
		Principal:      principal,
		PaymentMonthly: payment,
		AutoUpdateCash: autoCash,
		CreatedAt:      now().UnixMilli(),
		Origin:         origin,
	}
}
