// Command cfh is a single-player companion for the classic cashflow board
// game: it tracks the player's money so the game can focus on the deals.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"github.com/sparrishn/cashflow/cmd"
)

func main() {
	// A .env file is a convenient place for GEMINI_API_KEY and the
	// CASHFLOW_* settings; its absence is fine.
	godotenv.Load()

	// Shell completion: when invoked by the completion machinery this call
	// never returns.
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands() {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{Sub: sub}
	completer.Complete("cfh")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	commander.Register(subcommands.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
