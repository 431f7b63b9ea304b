// Package coach is the interactive AI game coach: a chat session primed with
// the player's financial statement.
package coach

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = `You are a friendly financial coach for a player of a
board game about escaping the rat race. The player's current financial
statement is provided below. Help the player reason about deals: which assets
build passive income, which debts are worth paying off, and how far they are
from the fast track, where passive income covers all expenses. Keep answers
short and concrete, using the figures from the statement.`

// Coach holds one chat session with the model.
type Coach struct {
	model string
	chat  *genai.Chat
}

// New prepares a coach using the given model name.
func New(model string) *Coach {
	return &Coach{model: model}
}

// Start opens the chat session, priming it with the player's financial
// statement.
func (c *Coach) Start(ctx context.Context, client *genai.Client, statement string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt + "\n\n" + statement}},
		},
	}
	chat, err := client.Chats.Create(ctx, c.model, config, nil)
	if err != nil {
		return fmt.Errorf("could not start the coach chat: %w", err)
	}
	c.chat = chat
	return nil
}

// Ask sends one question and returns the coach's answer.
func (c *Coach) Ask(ctx context.Context, question string) (string, error) {
	resp, err := c.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the coach")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "coach> "

// Run is the interactive REPL session. It reads questions from r until EOF
// or "bye" and writes answers to w through render (identity if nil).
func (c *Coach) Run(ctx context.Context, w io.Writer, r io.Reader, render func(string) string) error {
	if render == nil {
		render = func(s string) string { return s }
	}
	fmt.Fprintln(w, "Ask the coach about your next move. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		input, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // clean exit on Ctrl+D
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}
		answer, err := c.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, render(answer))
	}
}
