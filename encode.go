package cashflow

import (
	"encoding/json"
	"fmt"
	"io"
)

// The player document keeps the asset variant payload under a nested
// "details" object, discriminated by "type":
//
//	{"id":..,"type":"stocks","name":..,"autoUpdateCash":..,"createdAt":..,"details":{..}}

type stockDetails struct {
	SharePrice       Money    `json:"sharePrice"`
	NumShares        Quantity `json:"numShares"`
	DividendPerShare Money    `json:"dividendPerShare"`
}

type financedDetails struct {
	Cost            Money `json:"cost"`
	DownPayment     Money `json:"downPayment"`
	Liability       Money `json:"liability"`
	CashFlowMonthly Money `json:"cashFlowMonthly"`
}

type propertyDetails struct {
	Cost Money `json:"cost"`
}

// marshalAsset writes the envelope with a canonical key order.
func marshalAsset(a Asset, details any) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.AssetID())
	w.Append("type", a.Kind())
	w.Append("name", a.AssetName())
	w.Append("autoUpdateCash", a.AutoCash())
	w.Append("createdAt", a.Created())
	w.Append("details", details)
	return w.MarshalJSON()
}

func (a Stock) MarshalJSON() ([]byte, error) {
	return marshalAsset(a, stockDetails{
		SharePrice:       a.SharePrice,
		NumShares:        a.NumShares,
		DividendPerShare: a.DividendPerShare,
	})
}

func (a Business) MarshalJSON() ([]byte, error) {
	return marshalAsset(a, financedDetails(a.Financing))
}

func (a RealEstate) MarshalJSON() ([]byte, error) {
	return marshalAsset(a, financedDetails(a.Financing))
}

func (a PersonalProperty) MarshalJSON() ([]byte, error) {
	return marshalAsset(a, propertyDetails{Cost: a.Cost})
}

// decodeAsset reads one asset envelope and returns the matching variant.
func decodeAsset(raw []byte) (Asset, error) {
	var envelope struct {
		assetBase
		Type    AssetKind       `json:"type"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode asset envelope: %w", err)
	}
	switch envelope.Type {
	case AssetStocks:
		var d stockDetails
		if err := json.Unmarshal(envelope.Details, &d); err != nil {
			return nil, fmt.Errorf("could not decode stock details: %w", err)
		}
		return Stock{
			assetBase:        envelope.assetBase,
			SharePrice:       d.SharePrice,
			NumShares:        d.NumShares,
			DividendPerShare: d.DividendPerShare,
		}, nil
	case AssetBusiness:
		var d financedDetails
		if err := json.Unmarshal(envelope.Details, &d); err != nil {
			return nil, fmt.Errorf("could not decode business details: %w", err)
		}
		return Business{assetBase: envelope.assetBase, Financing: Financing(d)}, nil
	case AssetRealEstate:
		var d financedDetails
		if err := json.Unmarshal(envelope.Details, &d); err != nil {
			return nil, fmt.Errorf("could not decode real estate details: %w", err)
		}
		return RealEstate{assetBase: envelope.assetBase, Financing: Financing(d)}, nil
	case AssetPersonalProperty:
		var d propertyDetails
		if err := json.Unmarshal(envelope.Details, &d); err != nil {
			return nil, fmt.Errorf("could not decode personal property details: %w", err)
		}
		return PersonalProperty{assetBase: envelope.assetBase, Cost: d.Cost}, nil
	default:
		return nil, fmt.Errorf("unknown asset type: %q", envelope.Type)
	}
}

// UnmarshalJSON decodes the player document, resolving the asset sum type.
// Missing collections decode to empty ones and a missing profession name
// falls back to the default, so older or hand-edited documents stay loadable.
func (p *Player) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID                 string            `json:"id"`
		Name               string            `json:"name"`
		Phase              Phase             `json:"phase"`
		Cash               Money             `json:"cash"`
		Children           int               `json:"children"`
		Profession         Profession        `json:"profession"`
		Assets             []json.RawMessage `json:"assets"`
		Liabilities        []Liability       `json:"liabilities"`
		Ledger             []LedgerEntry     `json:"ledger"`
		AnnouncedFastTrack bool              `json:"announcedFastTrack"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	assets := make([]Asset, 0, len(doc.Assets))
	for _, raw := range doc.Assets {
		a, err := decodeAsset(raw)
		if err != nil {
			return err
		}
		assets = append(assets, a)
	}

	if doc.Profession.ProfessionName == "" {
		doc.Profession.ProfessionName = DefaultProfession().ProfessionName
	}
	if doc.Phase == "" {
		doc.Phase = RatRace
	}
	if doc.Liabilities == nil {
		doc.Liabilities = []Liability{}
	}
	if doc.Ledger == nil {
		doc.Ledger = []LedgerEntry{}
	}

	*p = Player{
		ID:                 doc.ID,
		Name:               doc.Name,
		Phase:              doc.Phase,
		Cash:               doc.Cash,
		Children:           doc.Children,
		Profession:         doc.Profession,
		Assets:             assets,
		Liabilities:        doc.Liabilities,
		Ledger:             doc.Ledger,
		AnnouncedFastTrack: doc.AnnouncedFastTrack,
	}
	return nil
}

// DecodePlayer reads a player document.
func DecodePlayer(r io.Reader) (*Player, error) {
	var p Player
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("could not decode player document: %w", err)
	}
	return &p, nil
}

// EncodePlayer writes the player document, indented for hand inspection.
func EncodePlayer(w io.Writer, p *Player) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode player document: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
