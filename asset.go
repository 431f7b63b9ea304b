package cashflow

import (
	"time"

	"github.com/google/uuid"
)

// AssetKind discriminates the asset variants.
type AssetKind string

const (
	AssetStocks           AssetKind = "stocks"
	AssetBusiness         AssetKind = "business"
	AssetRealEstate       AssetKind = "real_estate"
	AssetPersonalProperty AssetKind = "personal_property"
)

// Label returns a human readable kind name.
func (k AssetKind) Label() string {
	switch k {
	case AssetStocks:
		return "stocks"
	case AssetBusiness:
		return "business"
	case AssetRealEstate:
		return "real estate"
	case AssetPersonalProperty:
		return "personal property"
	default:
		return string(k)
	}
}

// Asset is the sum type over the four holdable asset variants. Variants are
// immutable values: mutating an asset means replacing it in the player's
// collection, which keeps aggregate clones cheap and safe.
type Asset interface {
	Kind() AssetKind
	AssetID() string
	AssetName() string
	AutoCash() bool
	Created() int64
}

// assetBase carries the fields common to every variant.
type assetBase struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AutoUpdateCash bool   `json:"autoUpdateCash"`
	CreatedAt      int64  `json:"createdAt"` // unix milliseconds
}

func (a assetBase) AssetID() string   { return a.ID }
func (a assetBase) AssetName() string { return a.Name }
func (a assetBase) AutoCash() bool    { return a.AutoUpdateCash }
func (a assetBase) Created() int64    { return a.CreatedAt }

func newAssetBase(name string, autoCash bool) assetBase {
	return assetBase{
		ID:             uuid.NewString(),
		Name:           name,
		AutoUpdateCash: autoCash,
		CreatedAt:      now().UnixMilli(),
	}
}

// now is the clock used for entity timestamps; tests override it.
var now = time.Now

// Stock is a dividend-paying share position.
type Stock struct {
	assetBase
	SharePrice       Money
	NumShares        Quantity
	DividendPerShare Money // monthly dividend per share
}

func (Stock) Kind() AssetKind { return AssetStocks }

// Financing is the payload shared by business and real estate holdings:
// a financed purchase with its own debt and a monthly cash flow that can be
// negative for money-losing holdings.
type Financing struct {
	Cost            Money
	DownPayment     Money
	Liability       Money
	CashFlowMonthly Money
}

// Business is a financed business holding.
type Business struct {
	assetBase
	Financing
}

func (Business) Kind() AssetKind { return AssetBusiness }

// RealEstate is a financed property holding. It is structurally identical to
// Business but kept as its own variant for display and reporting.
type RealEstate struct {
	assetBase
	Financing
}

func (RealEstate) Kind() AssetKind { return AssetRealEstate }

// PersonalProperty is a doodad: it has a cost but produces no income and
// carries no debt.
type PersonalProperty struct {
	assetBase
	Cost Money
}

func (PersonalProperty) Kind() AssetKind { return AssetPersonalProperty }
