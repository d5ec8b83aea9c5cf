// Package llm drafts entry summaries with an optional language-model
// provider. The feature is off unless a provider is configured.
package llm

import (
	"context"
	"fmt"

	"github.com/factdesk/factdesk/internal/model"
)

// Provider generates summary drafts.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Draft generates a summary draft for an entry
	Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// DraftRequest contains the input for summary drafting
type DraftRequest struct {
	// Entry is the curated record to summarize
	Entry model.Entry

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// DraftResponse contains the provider's output
type DraftResponse struct {
	// Summary is the generated draft text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// NewProvider creates a provider from configuration. An empty provider name
// means the feature is disabled and returns nil without error.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
