package llmHandlers

import (
	"context"
	"fmt"
)

type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
)

// NewLLMClient builds the single provider client selected at startup via
// LLM_PROVIDER. The interview always talks to exactly one provider.
func NewLLMClient(kind string) (Client, error) {
	switch Provider(kind) {
	case ProviderOpenRouter, "":
		return NewOpenRouterClient()
	case ProviderGemini:
		return NewGenaiGeminiClient(context.Background())
	default:
		return nil, fmt.Errorf("unknown provider %s", kind)
	}
}
