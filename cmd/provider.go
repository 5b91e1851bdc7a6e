package cmd

import (
	"context"
	"fmt"
	"strings"
)

// LLMProvider defines a provider-agnostic interface for the summarization backends.
// Implementations include Ollama (local), OpenAI and Anthropic.
type LLMProvider interface {
	// Summarize sends the prompt to the backend and returns the generated text.
	Summarize(ctx context.Context, prompt string) (string, error)
	// Name returns the provider name for display purposes.
	Name() string
}

// ProviderID identifies one of the supported backends.
type ProviderID string

const (
	ProviderOllama    ProviderID = "ollama"
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
)

// providerMenu lists the backends in the order they are offered to the user.
var providerMenu = []struct {
	Key   string
	ID    ProviderID
	Label string
}{
	{"1", ProviderOllama, "Ollama (local)"},
	{"2", ProviderOpenAI, "OpenAI"},
	{"3", ProviderAnthropic, "Anthropic"},
}

// Title returns the display name used in status messages.
func (p ProviderID) Title() string {
	switch p {
	case ProviderOllama:
		return "Ollama"
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	}
	return string(p)
}

// parseProviderID maps a provider name, as given on the command line, to its identifier.
func parseProviderID(name string) (ProviderID, error) {
	id := ProviderID(strings.ToLower(strings.TrimSpace(name)))
	switch id {
	case ProviderOllama, ProviderOpenAI, ProviderAnthropic:
		return id, nil
	}
	return "", fmt.Errorf("%w: %q (expected ollama, openai or anthropic)", ErrUnknownProvider, name)
}

// newProvider builds the backend for id. A non-empty model overrides the configured one.
// Credentials are not checked here; each provider checks its own key when Summarize is called.
func newProvider(id ProviderID, cfg Config, model string) (LLMProvider, error) {
	switch id {
	case ProviderOllama:
		if model == "" {
			model = cfg.OllamaModel
		}
		return NewOllamaProvider(model), nil
	case ProviderOpenAI:
		if model == "" {
			model = cfg.OpenAIModel
		}
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, model), nil
	case ProviderAnthropic:
		if model == "" {
			model = cfg.AnthropicModel
		}
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, model), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
}
