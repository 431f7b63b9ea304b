package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/sparrishn/cashflow/coach"
	"github.com/sparrishn/cashflow/renderer"
)

type coachCmd struct{}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "chat with the AI game coach" }
func (*coachCmd) Usage() string {
	return `cfh coach

  Starts an interactive session with the AI coach, primed with your current
  financial statement. Requires a GEMINI_API_KEY in the environment.
`
}
func (*coachCmd) SetFlags(*flag.FlagSet) {}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	gameCoach := coach.New(config.CoachModel)
	statement := renderer.StatementMarkdown(game.Player())
	if err := gameCoach.Start(ctx, client, statement); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := gameCoach.Run(ctx, os.Stdout, os.Stdin, nil); err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
