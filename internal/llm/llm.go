// Package llm wraps the external text-generation service behind a small
// single-completion interface.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Client sends one prompt and returns the raw text of the top completion.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	ModelID() string
}

type Request struct {
	System      string
	Prompt      string
	Temperature float32
}

type Config struct {
	Provider string // "openai" (any OpenAI-compatible endpoint) or "mock"
	APIKey   string
	BaseURL  string // empty for api.openai.com; set for Groq-style endpoints
	Model    string
	Timeout  time.Duration
}

// New builds a Client from configuration.
func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIClient(cfg)
	case "mock":
		return NewMockClient(""), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
