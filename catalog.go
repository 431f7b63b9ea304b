package cashflow

import (
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed professions.yaml
var professionsYAML []byte

// BuiltinProfessions returns the professions shipped with the game, from the
// embedded catalog. The catalog is read-only; saving a profession under a
// builtin name shadows it in the user's own presets.
func BuiltinProfessions() ProfessionPresets {
	var presets ProfessionPresets
	if err := yaml.Unmarshal(professionsYAML, &presets); err != nil {
		// The catalog is embedded at build time, so this only fires on a
		// broken build.
		log.Printf("warning: could not decode builtin profession catalog: %v", err)
		return nil
	}
	return presets
}
