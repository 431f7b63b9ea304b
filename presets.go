package cashflow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ProfessionPreset is a named, reusable profession profile.
type ProfessionPreset struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Profession Profession `json:"profession" yaml:"profession"`
}

// ProfessionPresets is the saved profession catalog.
type ProfessionPresets []ProfessionPreset

// Find returns the index of the preset with the given identity, or -1.
func (ps ProfessionPresets) Find(id string) int {
	return slices.IndexFunc(ps, func(p ProfessionPreset) bool { return p.ID == id })
}

// FindByName returns the index of the preset with the given name, matched
// case-insensitively, or -1.
func (ps ProfessionPresets) FindByName(name string) int {
	return slices.IndexFunc(ps, func(p ProfessionPreset) bool {
		return strings.EqualFold(p.Name, name)
	})
}

// Upsert saves a profession under the given name, replacing an existing
// preset with the same name (case-insensitive) or appending a new one.
func (ps *ProfessionPresets) Upsert(name string, prof Profession) {
	if i := ps.FindByName(name); i >= 0 {
		(*ps)[i].Profession = prof
		return
	}
	*ps = append(*ps, ProfessionPreset{ID: uuid.NewString(), Name: name, Profession: prof})
}

// Delete removes the preset at index i.
func (ps *ProfessionPresets) Delete(i int) {
	*ps = slices.Delete(*ps, i, i+1)
}

// PlayerPreset is a saved player name. Applying one overwrites only the
// player's display name; the rest of the game is untouched.
type PlayerPreset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlayerPresets is the list of saved player names.
type PlayerPresets []PlayerPreset

// Find returns the index of the saved name matching case-insensitively,
// or -1.
func (ps PlayerPresets) Find(name string) int {
	return slices.IndexFunc(ps, func(p PlayerPreset) bool {
		return strings.EqualFold(p.Name, name)
	})
}

// Add saves a player name. Names are unique case-insensitively; duplicates
// are rejected.
func (ps *PlayerPresets) Add(name string) error {
	if name == "" {
		return fmt.Errorf("a player name is required")
	}
	if ps.Find(name) >= 0 {
		return fmt.Errorf("player already saved: %q", name)
	}
	*ps = append(*ps, PlayerPreset{ID: uuid.NewString(), Name: name})
	return nil
}

// Delete removes the saved name at index i.
func (ps *PlayerPresets) Delete(i int) {
	*ps = slices.Delete(*ps, i, i+1)
}
