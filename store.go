package cashflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// The three documents have independent lifecycles: corruption of one never
// affects the others.
const (
	playerFile      = "player.json"
	professionsFile = "professions.json"
	playersFile     = "players.json"
)

// Store persists the game documents as JSON files in a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// PlayerPath returns the path of the player document.
func (s *Store) PlayerPath() string { return filepath.Join(s.dir, playerFile) }

// LoadPlayer reads the saved player. A missing or unparsable document
// degrades to a fresh default player; the fixed liability mirrors are
// re-synchronized in all cases.
func (s *Store) LoadPlayer() *Player {
	p, err := s.readPlayer()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: %v, starting a fresh game", err)
		}
		p = NewPlayer()
	}
	p.syncFixedLiabilities()
	return p
}

func (s *Store) readPlayer() (*Player, error) {
	f, err := os.Open(s.PlayerPath())
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePlayer(f)
}

// SavePlayer rewrites the player document.
func (s *Store) SavePlayer(p *Player) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	f, err := os.Create(s.PlayerPath())
	if err != nil {
		return fmt.Errorf("could not open player document for writing: %w", err)
	}
	defer f.Close()
	return EncodePlayer(f, p)
}

// LoadProfessionPresets reads the saved profession presets; a missing or
// corrupt document degrades to an empty list.
func (s *Store) LoadProfessionPresets() ProfessionPresets {
	var presets ProfessionPresets
	s.loadList(professionsFile, &presets)
	return presets
}

// SaveProfessionPresets rewrites the profession presets document.
func (s *Store) SaveProfessionPresets(presets ProfessionPresets) error {
	return s.saveList(professionsFile, presets)
}

// LoadPlayerPresets reads the saved player names; a missing or corrupt
// document degrades to an empty list.
func (s *Store) LoadPlayerPresets() PlayerPresets {
	var presets PlayerPresets
	s.loadList(playersFile, &presets)
	return presets
}

// SavePlayerPresets rewrites the player names document.
func (s *Store) SavePlayerPresets(presets PlayerPresets) error {
	return s.saveList(playersFile, presets)
}

func (s *Store) loadList(file string, out any) {
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not read %s: %v, using an empty list", file, err)
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("warning: could not decode %s: %v, using an empty list", file, err)
	}
}

func (s *Store) saveList(file string, list any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", file, err)
	}
	return os.WriteFile(filepath.Join(s.dir, file), append(data, '\n'), 0644)
}
