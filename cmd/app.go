// Package cmd implements the CLI application to play the game.
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
)

// Config holds the application settings, read from the environment.
type Config struct {
	// Home is the directory holding the game documents.
	Home string `env:"CASHFLOW_HOME"`
	// Currency is the ISO code used to format amounts.
	Currency string `env:"CASHFLOW_CURRENCY" envDefault:"SEK"`
	// CoachModel is the Gemini model used by the coach command.
	CoachModel string `env:"CASHFLOW_COACH_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig reads the settings from the environment, filling in defaults.
func LoadConfig() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Printf("warning: could not parse environment: %v", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.Home = filepath.Join(home, ".cashflow")
	}
	return cfg
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var config Config

// openStore loads the config and opens the document store.
func openStore() *cashflow.Store {
	config = LoadConfig()
	cashflow.SetCurrency(config.Currency)
	return cashflow.NewStore(config.Home)
}

// openGame loads the saved player into a game whose fast-track announcement
// goes to the terminal.
func openGame() (*cashflow.Game, *cashflow.Store) {
	store := openStore()
	game := cashflow.NewGame(store.LoadPlayer(), store)
	game.Announce = func(msg string) {
		printMarkdown("# 🎉 Fast Track\n\n" + msg + "\n")
	}
	return game, store
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible (e.g. output is piped).
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// Commands lists every subcommand, for registration and shell completion.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&dashboardCmd{},
		&statementCmd{},
		&logCmd{},
		&buyStockCmd{},
		&buyBusinessCmd{},
		&buyRealEstateCmd{},
		&buyPropertyCmd{},
		&sellStockCmd{},
		&sellCmd{},
		&removeAssetCmd{},
		&borrowCmd{},
		&removeLiabilityCmd{},
		&payoffCmd{},
		&paycheckCmd{},
		&receiveCmd{},
		&payCmd{},
		&professionCmd{},
		&professionsCmd{},
		&professionRmCmd{},
		&nameCmd{},
		&childrenCmd{},
		&playerSaveCmd{},
		&playersCmd{},
		&playerUseCmd{},
		&playerRmCmd{},
		&queryCmd{},
		&topicCmd{},
		&coachCmd{},
		&resetCmd{},
	}
}

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	groups := map[string]string{
		"dashboard": "reports", "statement": "reports", "log": "reports", "query": "reports",
		"buy-stock": "assets", "buy-business": "assets", "buy-realestate": "assets",
		"buy-property": "assets", "sell-stock": "assets", "sell": "assets", "remove-asset": "assets",
		"borrow": "liabilities", "remove-liability": "liabilities", "payoff": "liabilities",
		"paycheck": "money", "receive": "money", "pay": "money",
		"profession": "player", "professions": "player", "profession-rm": "player",
		"name": "player", "children": "player",
		"player-save": "player", "players": "player", "player-use": "player", "player-rm": "player",
		"topic": "help", "coach": "help",
	}
	for _, command := range Commands() {
		c.Register(command, groups[command.Name()])
	}
}
