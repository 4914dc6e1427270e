// Package chat turns user input into a reply by prompting a remote
// chat-completion API with the Voice Mate persona and whatever is known
// about the user.
package chat

import (
	"context"
	"log"

	"github.com/team-aura/voicemate/internal/llm"
	"github.com/team-aura/voicemate/internal/memory"
)

// Generator produces replies for user input. Upstream failures degrade to
// a fixed apology string rather than surfacing as errors.
type Generator struct {
	client llm.Client
	logger *log.Logger
}

// NewGenerator creates a Generator backed by client.
func NewGenerator(client llm.Client, logger *log.Logger) *Generator {
	return &Generator{client: client, logger: logger}
}

// Reply sends the user input to the completion API as a two-message
// (system, user) exchange and returns the generated text. Any failure is
// logged and replaced with the apology string; Reply never returns an
// error.
func (g *Generator) Reply(ctx context.Context, input string, rec memory.Record) string {
	messages := []llm.Message{
		{Role: "system", Content: buildSystemPrompt(rec)},
		{Role: "user", Content: input},
	}

	reply, err := g.client.Complete(ctx, messages)
	if err != nil {
		g.logger.Printf("chat: completion failed: %v", err)
		return Apology
	}
	return reply
}
