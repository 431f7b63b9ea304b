package cashflow

import (
	"slices"

	"github.com/google/uuid"
)

// Phase is the game stage.
type Phase string

const (
	// RatRace is the starting phase: the player works for a salary.
	RatRace Phase = "rat_race"
	// FastTrack is reached once passive income covers monthly expenses.
	// The transition is one way.
	FastTrack Phase = "fast_track"
)

// Label returns a human readable phase name.
func (p Phase) Label() string {
	switch p {
	case RatRace:
		return "rat race"
	case FastTrack:
		return "fast track"
	default:
		return string(p)
	}
}

// Player is the root aggregate: one player per saved game. Assets,
// liabilities, and the ledger are ordered most-recent-first.
//
// Asset and LedgerEntry values are never mutated in place; mutations replace
// the element in its slice. This makes Clone a slice copy rather than a deep
// traversal.
type Player struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Phase              Phase         `json:"phase"`
	Cash               Money         `json:"cash"`
	Children           int           `json:"children"`
	Profession         Profession    `json:"profession"`
	Assets             []Asset       `json:"assets"`
	Liabilities        []Liability   `json:"liabilities"`
	Ledger             []LedgerEntry `json:"ledger"`
	AnnouncedFastTrack bool          `json:"announcedFastTrack"`
}

// NewPlayer creates the default fresh player of a new game.
func NewPlayer() *Player {
	return &Player{
		ID:          uuid.NewString(),
		Name:        "Player",
		Phase:       RatRace,
		Profession:  DefaultProfession(),
		Assets:      []Asset{},
		Liabilities: []Liability{},
		Ledger:      []LedgerEntry{},
	}
}

// Clone returns an independent copy of the player. Element values are shared
// (they are replace-only), so copying the three slices is sufficient.
func (p *Player) Clone() *Player {
	c := *p
	c.Assets = slices.Clone(p.Assets)
	c.Liabilities = slices.Clone(p.Liabilities)
	c.Ledger = slices.Clone(p.Ledger)
	return &c
}

// FindAsset returns the asset with the given identity and its index, or
// (-1, nil) if absent.
func (p *Player) FindAsset(id string) (int, Asset) {
	for i, a := range p.Assets {
		if a.AssetID() == id {
			return i, a
		}
	}
	return -1, nil
}

// FindLiability returns the index of the liability with the given identity,
// or -1 if absent.
func (p *Player) FindLiability(id string) int {
	return slices.IndexFunc(p.Liabilities, func(l Liability) bool { return l.ID == id })
}

func (p *Player) prependAsset(a Asset) {
	p.Assets = append([]Asset{a}, p.Assets...)
}

func (p *Player) removeAssetAt(i int) {
	p.Assets = slices.Delete(slices.Clone(p.Assets), i, i+1)
}

func (p *Player) prependLiability(l Liability) {
	p.Liabilities = append([]Liability{l}, p.Liabilities...)
}

func (p *Player) removeLiabilityAt(i int) {
	p.Liabilities = slices.Delete(slices.Clone(p.Liabilities), i, i+1)
}

func (p *Player) prependEntry(e LedgerEntry) {
	p.Ledger = append([]LedgerEntry{e}, p.Ledger...)
}

// syncFixedLiabilities reconciles the liabilities collection with the
// profession's fixed-debt pairs: for each mirrored key, a pair with a positive
// balance or payment has exactly one liability with the pair's stable mirror
// identity and matching figures; a zeroed pair has none. The fixed entries of
// the collection are a materialized view of the profession, never
// independently authoritative.
//
// Must run after every profession write and on initial load.
func (p *Player) syncFixedLiabilities() {
	for _, k := range fixedKeys {
		balance, payment := p.Profession.FixedPair(k)
		idx := slices.IndexFunc(p.Liabilities, func(l Liability) bool {
			return l.Origin == OriginFixed && l.FixedKey == k
		})
		switch {
		case balance.IsPositive() || payment.IsPositive():
			if idx >= 0 {
				l := p.Liabilities[idx]
				l.Principal = balance
				l.PaymentMonthly = payment
				p.Liabilities[idx] = l
				continue
			}
			p.prependLiability(Liability{
				ID:             k.mirrorID(),
				Name:           k.Label(),
				Type:           k.liabilityType(),
				Principal:      balance,
				PaymentMonthly: payment,
				AutoUpdateCash: false,
				CreatedAt:      now().UnixMilli(),
				Origin:         OriginFixed,
				FixedKey:       k,
			})
		case idx >= 0:
			p.removeLiabilityAt(idx)
		}
	}
}
