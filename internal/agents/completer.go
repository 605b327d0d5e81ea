package agents

import (
	"context"
	"fmt"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/llm"
)

// Completer is the opaque text-completion backend the pipeline runs each stage
// against. Implementations may be high-latency; calls block until the backend
// answers or ctx is canceled.
type Completer interface {
	Complete(ctx context.Context, agent Agent, taskDescription string) (string, error)
}

// LLMCompleter executes agent tasks against an llm.Client, one blocking call
// per stage.
type LLMCompleter struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMCompleter wraps an llm.Client as a Completer.
func NewLLMCompleter(client llm.Client, tier llm.ModelTier) *LLMCompleter {
	return &LLMCompleter{client: client, tier: tier}
}

// Complete frames the task with the agent's persona and generates the output.
func (c *LLMCompleter) Complete(ctx context.Context, agent Agent, taskDescription string) (string, error) {
	prompt := fmt.Sprintf(
		"You are %s.\nYour goal: %s\n\n%s\n\nYour task:\n%s",
		agent.Role, agent.Goal, agent.Backstory, taskDescription,
	)

	output, err := c.client.GenerateContent(ctx, prompt, c.tier)
	if err != nil {
		return "", fmt.Errorf("completion failed for agent %s: %w", agent.Name, err)
	}
	return output, nil
}
