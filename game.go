package cashflow

import (
	"errors"
	"fmt"
	"log"
	"strconv"
)

// Game owns the authoritative player state and exposes every state
// transition. All operations go through apply: clone the player, run the
// mutation against the clone, re-evaluate the fast-track predicate, commit.
// A failed validation leaves the committed state untouched; no partial
// application is ever visible.
//
// The game is single-user and strictly sequential; there is no locking
// because there are no concurrent writers by construction.
type Game struct {
	player *Player
	store  *Store // optional; committed state is rewritten after every apply

	// Announce, when set, is called once when the player enters the fast
	// track.
	Announce func(msg string)
}

// NewGame wraps an existing player. The store may be nil for in-memory games.
func NewGame(p *Player, store *Store) *Game {
	return &Game{player: p, store: store}
}

// Player returns the current committed snapshot. Callers must treat it as
// read-only; all mutations go through the operations below.
func (g *Game) Player() *Player { return g.player }

// apply is the single mutation primitive.
func (g *Game) apply(mutate func(p *Player) error) error {
	draft := g.player.Clone()
	if err := mutate(draft); err != nil {
		return err
	}
	if draft.Phase == RatRace && !draft.AnnouncedFastTrack && ShouldEnterFastTrack(draft) {
		draft.Phase = FastTrack
		draft.AnnouncedFastTrack = true
		if g.Announce != nil {
			g.Announce("Passive income now covers expenses. You are on the Fast Track!")
		}
	}
	g.player = draft
	g.persist()
	return nil
}

// persist rewrites the saved document. Storage is an external observer: a
// write failure is logged, never surfaced as an operation failure.
func (g *Game) persist() {
	if g.store == nil {
		return
	}
	if err := g.store.SavePlayer(g.player); err != nil {
		log.Printf("warning: could not save player: %v", err)
	}
}

// borrowIfNeeded covers a cash shortfall before a debit of amount: it takes
// out an auto loan with the shortfall rounded up to the nearest 1000, credits
// the principal, and records the borrowing. Cash therefore never goes
// negative from a single tracked operation.
func borrowIfNeeded(p *Player, amount Money, note string) {
	if !amount.IsPositive() {
		return
	}
	if p.Cash.GreaterThanOrEqual(amount) {
		return
	}
	shortfall := amount.Sub(p.Cash)
	principal := shortfall.ceilTo(1000)
	p.prependLiability(newLiability("Auto Loan", LiabilityBankLoan, principal, Money{}, true, OriginAuto))
	p.Cash = p.Cash.Add(principal)
	p.prependEntry(newEntry(EntryAddLiability, principal, "Auto Loan for "+note))
}

// BuyStock purchases a share position. The full cost (price x shares) is paid.
func (g *Game) BuyStock(name string, sharePrice Money, shares Quantity, dividendPerShare Money, autoCash bool) error {
	if name == "" || !sharePrice.IsPositive() || !shares.IsPositive() {
		return errors.New("add stock: name, share price, and shares are required")
	}
	asset := Stock{
		assetBase:        newAssetBase(name, autoCash),
		SharePrice:       sharePrice,
		NumShares:        shares,
		DividendPerShare: dividendPerShare.orZero(),
	}
	cost := sharePrice.Mul(shares)
	return g.apply(func(p *Player) error {
		p.prependAsset(asset)
		if asset.AutoUpdateCash {
			borrowIfNeeded(p, cost, "Stock: "+asset.Name)
			p.Cash = p.Cash.Sub(cost)
		}
		p.prependEntry(newEntry(EntryBuyAsset, cost.Neg(), "Stock: "+asset.Name))
		return nil
	})
}

// BuyBusiness purchases a financed business. Only the down payment is paid;
// when no explicit liability is given it defaults to cost minus down payment.
func (g *Game) BuyBusiness(name string, cost, downPayment, liability, cashFlowMonthly Money, autoCash bool) error {
	return g.buyFinanced(AssetBusiness, name, cost, downPayment, liability, cashFlowMonthly, autoCash)
}

// BuyRealEstate purchases a financed property; same contract as BuyBusiness.
func (g *Game) BuyRealEstate(name string, cost, downPayment, liability, cashFlowMonthly Money, autoCash bool) error {
	return g.buyFinanced(AssetRealEstate, name, cost, downPayment, liability, cashFlowMonthly, autoCash)
}

func (g *Game) buyFinanced(kind AssetKind, name string, cost, downPayment, liability, cashFlowMonthly Money, autoCash bool) error {
	if name == "" || !cost.IsPositive() || !downPayment.IsPositive() {
		return fmt.Errorf("add %s: name, cost, and down payment are required", kind.Label())
	}
	if !liability.IsPositive() {
		liability = cost.Sub(downPayment).orZero()
	}
	financing := Financing{
		Cost:            cost,
		DownPayment:     downPayment,
		Liability:       liability,
		CashFlowMonthly: cashFlowMonthly,
	}
	var asset Asset
	if kind == AssetBusiness {
		asset = Business{assetBase: newAssetBase(name, autoCash), Financing: financing}
	} else {
		asset = RealEstate{assetBase: newAssetBase(name, autoCash), Financing: financing}
	}
	note := kind.Label() + ": " + name
	return g.apply(func(p *Player) error {
		p.prependAsset(asset)
		if asset.AutoCash() {
			borrowIfNeeded(p, downPayment, note)
			p.Cash = p.Cash.Sub(downPayment)
		}
		p.prependEntry(newEntry(EntryBuyAsset, downPayment.Neg(), note))
		return nil
	})
}

// BuyPersonalProperty purchases a doodad at full cost.
func (g *Game) BuyPersonalProperty(name string, cost Money, autoCash bool) error {
	if name == "" || !cost.IsPositive() {
		return errors.New("add personal property: name and cost are required")
	}
	asset := PersonalProperty{assetBase: newAssetBase(name, autoCash), Cost: cost}
	return g.apply(func(p *Player) error {
		p.prependAsset(asset)
		if asset.AutoUpdateCash {
			borrowIfNeeded(p, cost, "Property: "+asset.Name)
			p.Cash = p.Cash.Sub(cost)
		}
		p.prependEntry(newEntry(EntryBuyAsset, cost.Neg(), "Property: "+asset.Name))
		return nil
	})
}

// SellStock sells shares at the given price. Selling every held share removes
// the position; a partial sale keeps it with a reduced share count.
func (g *Game) SellStock(assetID string, price Money, shares Quantity) error {
	if !price.IsPositive() || !shares.IsPositive() {
		return errors.New("sell stock: enter price and shares")
	}
	return g.apply(func(p *Player) error {
		i, a := p.FindAsset(assetID)
		if i < 0 {
			return fmt.Errorf("sell stock: asset %q not found", assetID)
		}
		stock, ok := a.(Stock)
		if !ok {
			return fmt.Errorf("sell stock: %q is not a stock position", a.AssetName())
		}
		if shares.GreaterThan(stock.NumShares) {
			return errors.New("sell stock: shares exceed holdings")
		}
		proceeds := price.Mul(shares)
		stock.NumShares = stock.NumShares.Sub(shares)
		p.Cash = p.Cash.Add(proceeds)
		p.prependEntry(newEntry(EntrySellAsset, proceeds, "Stock: "+stock.Name))
		if stock.NumShares.IsZero() {
			p.removeAssetAt(i)
			return nil
		}
		p.Assets[i] = stock
		return nil
	})
}

// SellAsset sells a non-stock asset outright. Financed holdings must sell for
// at least their outstanding liability; the net of price minus liability is
// credited. The asset is always fully removed.
func (g *Game) SellAsset(assetID string, price Money) error {
	if !price.IsPositive() {
		return errors.New("sell asset: enter a sell price")
	}
	return g.apply(func(p *Player) error {
		i, a := p.FindAsset(assetID)
		if i < 0 {
			return fmt.Errorf("sell asset: asset %q not found", assetID)
		}
		if _, ok := a.(Stock); ok {
			return errors.New("sell asset: use sell-stock for share positions")
		}
		proceeds := price
		if debt := AssetLiability(a); debt.IsPositive() {
			if price.LessThan(debt) {
				return fmt.Errorf("sell asset: price %s does not cover the outstanding liability %s", price, debt)
			}
			proceeds = price.Sub(debt)
		}
		p.Cash = p.Cash.Add(proceeds)
		p.prependEntry(newEntry(EntrySellAsset, proceeds, a.Kind().Label()+": "+a.AssetName()))
		p.removeAssetAt(i)
		return nil
	})
}

// RemoveAsset drops an asset without any cash movement.
func (g *Game) RemoveAsset(assetID string) error {
	return g.apply(func(p *Player) error {
		i, a := p.FindAsset(assetID)
		if i < 0 {
			return fmt.Errorf("remove asset: asset %q not found", assetID)
		}
		p.removeAssetAt(i)
		p.prependEntry(newEntry(EntryRemoveAsset, Money{}, a.AssetName()))
		return nil
	})
}

// AddLiability records a manual borrowing. With autoCash set the principal is
// credited to cash.
func (g *Game) AddLiability(name string, typ LiabilityType, principal, paymentMonthly Money, autoCash bool) error {
	if name == "" || !principal.IsPositive() {
		return errors.New("add liability: name and principal are required")
	}
	liability := newLiability(name, typ, principal, paymentMonthly.orZero(), autoCash, OriginManual)
	return g.apply(func(p *Player) error {
		p.prependLiability(liability)
		if liability.AutoUpdateCash {
			p.Cash = p.Cash.Add(liability.Principal)
		}
		p.prependEntry(newEntry(EntryAddLiability, liability.Principal, "Borrow: "+liability.Name))
		return nil
	})
}

// RemoveLiability drops a liability without paying it. Removing a fixed
// mirror clears the corresponding profession pair: this is the designated way
// to cancel a fixed debt from the liabilities view.
func (g *Game) RemoveLiability(liabilityID string) error {
	return g.apply(func(p *Player) error {
		i := p.FindLiability(liabilityID)
		if i < 0 {
			return fmt.Errorf("remove liability: liability %q not found", liabilityID)
		}
		l := p.Liabilities[i]
		if l.Origin == OriginFixed {
			p.Profession.clearFixedPair(l.FixedKey)
		}
		p.removeLiabilityAt(i)
		p.prependEntry(newEntry(EntryRemoveLiability, Money{}, l.Name))
		return nil
	})
}

// PayOffLiability settles a liability in full from cash. Unlike purchases,
// paying off never auto-borrows: insufficient cash is a rejection.
func (g *Game) PayOffLiability(liabilityID string) error {
	return g.apply(func(p *Player) error {
		i := p.FindLiability(liabilityID)
		if i < 0 {
			return fmt.Errorf("pay off liability: liability %q not found", liabilityID)
		}
		l := p.Liabilities[i]
		if p.Cash.LessThan(l.Principal) {
			return fmt.Errorf("pay off %s: insufficient cash (%s needed, %s on hand)", l.Name, l.Principal, p.Cash)
		}
		p.Cash = p.Cash.Sub(l.Principal)
		if l.Origin == OriginFixed {
			p.Profession.clearFixedPair(l.FixedKey)
		}
		p.removeLiabilityAt(i)
		p.prependEntry(newEntry(EntryPayOffLiability, l.Principal.Neg(), l.Name))
		return nil
	})
}

// CollectPaycheck credits the current monthly cash flow and then amortizes
// every liability by its monthly payment. Amortized fixed mirrors write their
// reduced balance back into the profession. There is no once-per-month guard:
// collecting twice amortizes twice.
func (g *Game) CollectPaycheck() error {
	return g.apply(func(p *Player) error {
		amount := MonthlyCashflow(p)
		p.Cash = p.Cash.Add(amount)
		p.prependEntry(newEntry(EntryPaycheck, amount, "Collect paycheck"))

		kept := make([]Liability, 0, len(p.Liabilities))
		for _, l := range p.Liabilities {
			if l.PaymentMonthly.IsPositive() {
				l.Principal = l.Principal.Sub(l.PaymentMonthly).orZero()
				if l.Origin == OriginFixed {
					p.Profession.setFixedBalance(l.FixedKey, l.Principal)
				}
			}
			if l.Principal.IsZero() && l.PaymentMonthly.IsZero() {
				continue // fully settled, drop it
			}
			kept = append(kept, l)
		}
		p.Liabilities = kept
		return nil
	})
}

// Receive credits an ad hoc amount.
func (g *Game) Receive(amount Money) error {
	if !amount.IsPositive() {
		return errors.New("receive money: amount must be greater than 0")
	}
	return g.apply(func(p *Player) error {
		p.Cash = p.Cash.Add(amount)
		p.prependEntry(newEntry(EntryReceive, amount, "Receive money"))
		return nil
	})
}

// Pay debits an ad hoc amount, auto-borrowing first if cash is short.
func (g *Game) Pay(amount Money) error {
	if !amount.IsPositive() {
		return errors.New("pay money: amount must be greater than 0")
	}
	return g.apply(func(p *Player) error {
		borrowIfNeeded(p, amount, "Pay money")
		p.Cash = p.Cash.Sub(amount)
		p.prependEntry(newEntry(EntryPay, amount.Neg(), "Pay money"))
		return nil
	})
}

// SetProfession replaces the profession wholesale, optionally resetting cash
// to the profession's savings, and re-synchronizes the fixed liability
// mirrors.
func (g *Game) SetProfession(prof Profession, applySavingsToCash bool) error {
	return g.apply(func(p *Player) error {
		p.Profession = prof
		if applySavingsToCash {
			p.Cash = prof.Savings
		}
		p.syncFixedLiabilities()
		p.prependEntry(newEntry(EntrySetProfession, Money{}, prof.ProfessionName))
		return nil
	})
}

// SetChildren sets the children count, clamped to be non-negative.
func (g *Game) SetChildren(n int) error {
	if n < 0 {
		n = 0
	}
	return g.apply(func(p *Player) error {
		p.Children = n
		p.prependEntry(newEntry(EntrySetChildren, Money{}, strconv.Itoa(n)))
		return nil
	})
}

// SetName changes the player's display name only.
func (g *Game) SetName(name string) error {
	if name == "" {
		return errors.New("set name: name is required")
	}
	return g.apply(func(p *Player) error {
		p.Name = name
		return nil
	})
}

// Reset replaces the game with a fresh default player. The fast-track
// predicate is deliberately not evaluated here: a fresh player has zero
// expenses and would trip it immediately, and a new game starts in the rat
// race.
func (g *Game) Reset() {
	g.player = NewPlayer()
	g.persist()
}
