package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the player document with JSONPath" }
func (*queryCmd) Usage() string {
	return `cfh query <jsonpath>

  Evaluates a JSONPath expression against the saved player document, for
  scripting around the game.

Usage Examples:
$ cfh query '$.cash'
$ cfh query '$.assets[*].name'
$ cfh query '$.liabilities[?(@.origin=="auto")].principal'
`
}
func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required")
		return subcommands.ExitFailure
	}
	store := openStore()
	data, err := os.ReadFile(store.PlayerPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading player document:", err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintln(os.Stderr, "Error decoding player document:", err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error evaluating query:", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding result:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
