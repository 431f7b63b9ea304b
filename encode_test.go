package cashflow

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlayer_RoundTrip(t *testing.T) {
	p := NewPlayer()
	p.Name = "Alice"
	p.Cash = M(1234.5)
	p.Children = 2
	p.Profession = engineer()
	p.syncFixedLiabilities()
	p.prependAsset(Stock{assetBase: newAssetBase("ACME", true), SharePrice: M(12.5), NumShares: Q(80), DividendPerShare: M(0.1)})
	p.prependAsset(Business{assetBase: newAssetBase("Car wash", true), Financing: Financing{Cost: M(30000), DownPayment: M(5000), Liability: M(25000), CashFlowMonthly: M(450)}})
	p.prependAsset(RealEstate{assetBase: newAssetBase("Condo", true), Financing: Financing{Cost: M(60000), DownPayment: M(6000), Liability: M(54000), CashFlowMonthly: M(-100)}})
	p.prependAsset(PersonalProperty{assetBase: newAssetBase("Boat", true), Cost: M(9000)})
	p.prependEntry(newEntry(EntryReceive, M(100), "gift"))

	var buf bytes.Buffer
	if err := EncodePlayer(&buf, p); err != nil {
		t.Fatalf("EncodePlayer() error = %v", err)
	}
	got, err := DecodePlayer(&buf)
	if err != nil {
		t.Fatalf("DecodePlayer() error = %v", err)
	}

	if got.Name != p.Name || got.Children != p.Children || got.Phase != p.Phase {
		t.Errorf("header round trip: got %s/%d/%s", got.Name, got.Children, got.Phase)
	}
	assertMoney(t, "cash", got.Cash, p.Cash)
	if len(got.Assets) != len(p.Assets) {
		t.Fatalf("got %d assets, want %d", len(got.Assets), len(p.Assets))
	}
	for i, want := range p.Assets {
		a := got.Assets[i]
		if a.Kind() != want.Kind() || a.AssetID() != want.AssetID() ||
			a.AssetName() != want.AssetName() || a.AutoCash() != want.AutoCash() ||
			a.Created() != want.Created() {
			t.Errorf("asset %d: got %#v, want %#v", i, a, want)
		}
		assertMoney(t, "asset value", AssetValue(a), AssetValue(want))
		assertMoney(t, "asset cashflow", AssetMonthlyCashflow(a), AssetMonthlyCashflow(want))
		assertMoney(t, "asset liability", AssetLiability(a), AssetLiability(want))
	}
	if len(got.Liabilities) != len(p.Liabilities) || len(got.Ledger) != len(p.Ledger) {
		t.Errorf("collections: %d/%d, want %d/%d",
			len(got.Liabilities), len(got.Ledger), len(p.Liabilities), len(p.Ledger))
	}
	// Derived figures must survive the round trip exactly.
	assertMoney(t, "MonthlyCashflow", MonthlyCashflow(got), MonthlyCashflow(p))
}

func TestPlayer_EncodeEnvelopeShape(t *testing.T) {
	p := NewPlayer()
	p.prependAsset(Stock{assetBase: newAssetBase("ACME", false), SharePrice: M(10), NumShares: Q(5), DividendPerShare: M(0.5)})
	var buf bytes.Buffer
	if err := EncodePlayer(&buf, p); err != nil {
		t.Fatalf("EncodePlayer() error = %v", err)
	}
	doc := buf.String()
	for _, want := range []string{`"type": "stocks"`, `"details"`, `"sharePrice": 10`, `"numShares": 5`} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s:\n%s", want, doc)
		}
	}
	// Amounts are bare numbers, never quoted strings.
	if strings.Contains(doc, `"sharePrice": "`) {
		t.Errorf("amount encoded as string:\n%s", doc)
	}
}

func TestPlayer_DecodeToleratesSparseDocument(t *testing.T) {
	doc := `{"id":"p1","name":"Bob","cash":250}`
	got, err := DecodePlayer(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodePlayer() error = %v", err)
	}
	if got.Phase != RatRace {
		t.Errorf("phase = %s, want default rat_race", got.Phase)
	}
	if got.Profession.ProfessionName != "Custom" {
		t.Errorf("profession name = %q, want Custom", got.Profession.ProfessionName)
	}
	if got.Assets == nil || got.Liabilities == nil || got.Ledger == nil {
		t.Error("sparse document decoded to nil collections")
	}
	assertMoney(t, "cash", got.Cash, M(250))
}

func TestPlayer_DecodeRejectsUnknownAssetType(t *testing.T) {
	doc := `{"id":"p1","assets":[{"id":"a1","type":"bonds","details":{}}]}`
	if _, err := DecodePlayer(strings.NewReader(doc)); err == nil {
		t.Fatal("DecodePlayer with unknown asset type: want error")
	}
}
