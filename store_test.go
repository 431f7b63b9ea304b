package cashflow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadPlayerDefaultsWhenMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	p := s.LoadPlayer()
	if p.Name != "Player" || p.Phase != RatRace {
		t.Errorf("fresh player = %s/%s", p.Name, p.Phase)
	}
	if len(p.Assets)+len(p.Liabilities)+len(p.Ledger) != 0 {
		t.Error("fresh player carries collections")
	}
}

func TestStore_SaveThenLoadPlayer(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "cashflow"))
	p := NewPlayer()
	p.Name = "Alice"
	p.Profession = engineer()
	p.syncFixedLiabilities()
	if err := s.SavePlayer(p); err != nil {
		t.Fatalf("SavePlayer() error = %v", err)
	}

	got := s.LoadPlayer()
	if got.Name != "Alice" {
		t.Errorf("name = %q, want Alice", got.Name)
	}
	// The mirrors were saved and re-synced on load: still exactly four.
	if len(got.Liabilities) != 4 {
		t.Errorf("got %d liabilities, want 4 fixed mirrors", len(got.Liabilities))
	}
}

func TestStore_LoadPlayerRecoversFromCorruption(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := os.WriteFile(s.PlayerPath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	p := s.LoadPlayer()
	if p == nil || p.Name != "Player" {
		t.Errorf("corrupt document did not degrade to a fresh player: %+v", p)
	}
}

func TestStore_LoadPlayerSyncsFixedMirrors(t *testing.T) {
	// A hand-edited document with a fixed pair but no mirror: load repairs it.
	s := NewStore(t.TempDir())
	doc := `{"id":"p1","name":"Bob","profession":{"professionName":"Custom","mortgageBalance":50000,"mortgagePayment":500}}`
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.PlayerPath(), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	p := s.LoadPlayer()
	i := p.FindLiability("fixed:mortgage")
	if i < 0 {
		t.Fatal("load did not materialize the mortgage mirror")
	}
	assertMoney(t, "mirror principal", p.Liabilities[i].Principal, M(50000))
}

func TestStore_PresetDocumentsAreIndependent(t *testing.T) {
	s := NewStore(t.TempDir())

	var profs ProfessionPresets
	profs.Upsert("Engineer", engineer())
	if err := s.SaveProfessionPresets(profs); err != nil {
		t.Fatalf("SaveProfessionPresets() error = %v", err)
	}

	var players PlayerPresets
	if err := players.Add("run one"); err != nil {
		t.Fatal(err)
	}
	if err := s.SavePlayerPresets(players); err != nil {
		t.Fatalf("SavePlayerPresets() error = %v", err)
	}

	// Corrupt the profession document; the player documents stay readable.
	if err := os.WriteFile(filepath.Join(s.Dir(), "professions.json"), []byte("???"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := s.LoadProfessionPresets(); len(got) != 0 {
		t.Errorf("corrupt presets loaded as %+v, want empty", got)
	}
	if got := s.LoadPlayerPresets(); len(got) != 1 || got[0].Name != "run one" {
		t.Errorf("player presets = %+v", got)
	}
}
