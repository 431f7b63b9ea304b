package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "start a new game" }
func (*resetCmd) Usage() string {
	return `cfh reset [-f]

  Replaces the current game with a fresh one. The current game is lost
  unless it was saved with player-save.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Reset without asking.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	if !c.force {
		fmt.Printf("Reset the game for %s? Type 'yes' to confirm: ", game.Player().Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return subcommands.ExitFailure
		}
	}
	game.Reset()
	fmt.Println("New game started. Pick a profession with 'cfh profession'.")
	return subcommands.ExitSuccess
}
