package cashflow

import (
	"time"

	"github.com/google/uuid"
)

// EntryType is a typed string identifying what a ledger entry records.
type EntryType string

const (
	EntrySetProfession   EntryType = "set_profession"
	EntrySetChildren     EntryType = "set_children"
	EntryBuyAsset        EntryType = "buy_asset"
	EntrySellAsset       EntryType = "sell_asset"
	EntryRemoveAsset     EntryType = "remove_asset"
	EntryAddLiability    EntryType = "add_liability"
	EntryRemoveLiability EntryType = "remove_liability"
	EntryPayOffLiability EntryType = "pay_off_liability"
	EntryPaycheck        EntryType = "paycheck"
	EntryReceive         EntryType = "receive"
	EntryPay             EntryType = "pay"
)

// Label returns a human readable entry type.
func (t EntryType) Label() string {
	switch t {
	case EntrySetProfession:
		return "set profession"
	case EntrySetChildren:
		return "set children"
	case EntryBuyAsset:
		return "buy asset"
	case EntrySellAsset:
		return "sell asset"
	case EntryRemoveAsset:
		return "remove asset"
	case EntryAddLiability:
		return "add liability"
	case EntryRemoveLiability:
		return "remove liability"
	case EntryPayOffLiability:
		return "pay off liability"
	case EntryPaycheck:
		return "paycheck"
	case EntryReceive:
		return "receive"
	case EntryPay:
		return "pay"
	default:
		return string(t)
	}
}

// LedgerEntry is one immutable record in the player's transaction history.
// Entries are never mutated or reordered once written; newer entries are
// prepended.
type LedgerEntry struct {
	ID     string    `json:"id"`
	TS     int64     `json:"ts"` // unix milliseconds
	Type   EntryType `json:"type"`
	Amount Money     `json:"amount"`
	Note   string    `json:"note,omitempty"`
}

// When returns the entry timestamp as a time.
func (e LedgerEntry) When() time.Time { return time.UnixMilli(e.TS) }

func newEntry(typ EntryType, amount Money, note string) LedgerEntry {
	return LedgerEntry{
		ID:     uuid.NewString(),
		TS:     now().UnixMilli(),
		Type:   typ,
		Amount: amount,
		Note:   note,
	}
}
