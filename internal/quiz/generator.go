package quiz

import "context"

// Generator produces quiz questions from a remote LLM provider.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error. All configured
	// validators run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
