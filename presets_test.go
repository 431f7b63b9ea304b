package cashflow

import "testing"

func TestProfessionPresets_Upsert(t *testing.T) {
	var ps ProfessionPresets
	ps.Upsert("Engineer", engineer())
	if len(ps) != 1 || ps[0].ID == "" {
		t.Fatalf("after first upsert: %+v", ps)
	}

	// Same name, different case: replaces rather than duplicates.
	changed := engineer()
	changed.Salary = M(5200)
	ps.Upsert("engineer", changed)
	if len(ps) != 1 {
		t.Fatalf("got %d presets, want 1 after case-insensitive replace", len(ps))
	}
	assertMoney(t, "replaced salary", ps[0].Profession.Salary, M(5200))

	ps.Upsert("Doctor", DefaultProfession())
	if len(ps) != 2 {
		t.Fatalf("got %d presets, want 2", len(ps))
	}
	if i := ps.FindByName("DOCTOR"); i != 1 {
		t.Errorf("FindByName(DOCTOR) = %d, want 1", i)
	}
	if i := ps.FindByName("plumber"); i != -1 {
		t.Errorf("FindByName(plumber) = %d, want -1", i)
	}

	ps.Delete(0)
	if len(ps) != 1 || ps[0].Name != "Doctor" {
		t.Errorf("after delete: %+v", ps)
	}
}

func TestPlayerPresets_AddRejectsDuplicates(t *testing.T) {
	var ps PlayerPresets
	if err := ps.Add(""); err == nil {
		t.Fatal("Add with empty name: want error")
	}
	if err := ps.Add("Alice"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := ps.Add("ALICE"); err == nil {
		t.Fatal("Add with duplicate name (case-insensitive): want error")
	}
	if len(ps) != 1 || ps[0].ID == "" {
		t.Fatalf("saved names = %+v, want one with an identity", ps)
	}

	if i := ps.Find("alice"); i != 0 {
		t.Errorf("Find(alice) = %d, want 0", i)
	}
	if i := ps.Find("Bob"); i != -1 {
		t.Errorf("Find(Bob) = %d, want -1", i)
	}

	ps.Delete(0)
	if len(ps) != 0 {
		t.Errorf("after delete: %d saved names", len(ps))
	}
}

func TestBuiltinProfessions(t *testing.T) {
	builtins := BuiltinProfessions()
	if len(builtins) == 0 {
		t.Fatal("empty builtin catalog")
	}
	i := builtins.FindByName("Engineer")
	if i < 0 {
		t.Fatal("no builtin Engineer")
	}
	prof := builtins[i].Profession
	assertMoney(t, "engineer salary", prof.Salary, M(4900))
	assertMoney(t, "engineer mortgage", prof.MortgageBalance, M(75000))
	for _, b := range builtins {
		if b.ID == "" || b.Name == "" || b.Profession.ProfessionName == "" {
			t.Errorf("incomplete builtin preset: %+v", b)
		}
		if !b.Profession.Salary.IsPositive() {
			t.Errorf("builtin %s has no salary", b.Name)
		}
	}
}
