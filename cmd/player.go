package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
	"github.com/sparrishn/cashflow/renderer"
)

type nameCmd struct{}

func (*nameCmd) Name() string     { return "name" }
func (*nameCmd) Synopsis() string { return "set the player's display name" }
func (*nameCmd) Usage() string {
	return `cfh name <name>
`
}
func (*nameCmd) SetFlags(*flag.FlagSet) {}

func (c *nameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	if err := game.SetName(strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Hello, %s.\n", game.Player().Name)
	return subcommands.ExitSuccess
}

type childrenCmd struct{}

func (*childrenCmd) Name() string     { return "children" }
func (*childrenCmd) Synopsis() string { return "set the number of children" }
func (*childrenCmd) Usage() string {
	return `cfh children <count>

  Sets the number of children. Each child adds the profession's per-child
  expense to the monthly expenses.
`
}
func (*childrenCmd) SetFlags(*flag.FlagSet) {}

func (c *childrenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	if err := game.SetChildren(cashflow.ParseChildren(f.Arg(0))); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Children: %d\n", game.Player().Children)
	return subcommands.ExitSuccess
}

type playerSaveCmd struct{}

func (*playerSaveCmd) Name() string     { return "player-save" }
func (*playerSaveCmd) Synopsis() string { return "save a player name for quick switching" }
func (*playerSaveCmd) Usage() string {
	return `cfh player-save [<name>]

  Saves a player name shortcut (the current display name by default).
  Applying it later with player-use changes only the display name.
`
}
func (*playerSaveCmd) SetFlags(*flag.FlagSet) {}

func (c *playerSaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, store := openGame()
	name := strings.Join(f.Args(), " ")
	if name == "" {
		name = game.Player().Name
	}
	saved := store.LoadPlayerPresets()
	if err := saved.Add(name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.SavePlayerPresets(saved); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved player %q.\n", name)
	return subcommands.ExitSuccess
}

type playersCmd struct{}

func (*playersCmd) Name() string     { return "players" }
func (*playersCmd) Synopsis() string { return "list saved player names" }
func (*playersCmd) Usage() string {
	return `cfh players
`
}
func (*playersCmd) SetFlags(*flag.FlagSet) {}

func (c *playersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	saved := store.LoadPlayerPresets()
	if len(saved) == 0 {
		fmt.Println("No saved players.")
		return subcommands.ExitSuccess
	}
	for _, preset := range saved {
		fmt.Println(preset.Name)
	}
	return subcommands.ExitSuccess
}

type playerUseCmd struct{}

func (*playerUseCmd) Name() string     { return "player-use" }
func (*playerUseCmd) Synopsis() string { return "switch to a saved player name" }
func (*playerUseCmd) Usage() string {
	return `cfh player-use <name>

  Sets the player's display name from a saved shortcut. Everything else
  about the game stays as it is.
`
}
func (*playerUseCmd) SetFlags(*flag.FlagSet) {}

func (c *playerUseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, store := openGame()
	name := strings.Join(f.Args(), " ")
	saved := store.LoadPlayerPresets()
	i := saved.Find(name)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: no saved player named %q\n", name)
		return subcommands.ExitFailure
	}
	if err := game.SetName(saved[i].Name); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(game.Player()))
	return subcommands.ExitSuccess
}

type playerRmCmd struct{}

func (*playerRmCmd) Name() string     { return "player-rm" }
func (*playerRmCmd) Synopsis() string { return "delete a saved player name" }
func (*playerRmCmd) Usage() string {
	return `cfh player-rm <name>
`
}
func (*playerRmCmd) SetFlags(*flag.FlagSet) {}

func (c *playerRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	name := strings.Join(f.Args(), " ")
	saved := store.LoadPlayerPresets()
	i := saved.Find(name)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: no saved player named %q\n", name)
		return subcommands.ExitFailure
	}
	saved.Delete(i)
	if err := store.SavePlayerPresets(saved); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted player %q.\n", name)
	return subcommands.ExitSuccess
}
