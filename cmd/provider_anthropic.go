package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultAnthropicModel is used when ANTHROPIC_MODEL is not set.
	DefaultAnthropicModel = "claude-3-sonnet-20240229"
	// DefaultAnthropicBaseURL is the public Anthropic API root.
	DefaultAnthropicBaseURL = "https://api.anthropic.com/"
	// AnthropicVersion is sent in the anthropic-version header.
	AnthropicVersion = "2023-06-01"
)

// AnthropicProvider implements LLMProvider using the Anthropic messages API.
type AnthropicProvider struct {
	apiKey  string
	baseURL string
	model   string
	opts    []option.RequestOption
}

// NewAnthropicProvider creates a new AnthropicProvider. The key is checked by Summarize.
func NewAnthropicProvider(apiKey, baseURL, model string, opts ...option.RequestOption) *AnthropicProvider {
	if baseURL == "" {
		baseURL = DefaultAnthropicBaseURL
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		opts:    opts,
	}
}

// Summarize implements LLMProvider.Summarize using the messages API.
func (a *AnthropicProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("%w: ANTHROPIC_API_KEY environment variable not set, add your Anthropic API key to the .env file", ErrConfiguration)
	}

	opts := append([]option.RequestOption{
		option.WithAPIKey(a.apiKey),
		option.WithBaseURL(a.baseURL),
		option.WithHeader("anthropic-version", AnthropicVersion),
		option.WithMaxRetries(0),
	}, a.opts...)
	client := anthropic.NewClient(opts...)

	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: MaxSummaryTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classifyAnthropicError(err)
	}

	if len(message.Content) == 0 || !message.Content[0].JSON.Text.Valid() {
		return "", fmt.Errorf("%w: unexpected response format from Anthropic: first content block has no text", ErrParse)
	}
	return message.Content[0].Text, nil
}

// Name implements LLMProvider.Name.
func (a *AnthropicProvider) Name() string {
	return string(ProviderAnthropic)
}

func classifyAnthropicError(err error) error {
	var apiErr *anthropic.Error
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: anthropic API returned status %d: %v", ErrTransport, apiErr.StatusCode, apiErr)
	case errors.As(err, &syntaxErr), isResponseDecodeError(err):
		return fmt.Errorf("%w: unexpected response format from Anthropic: %v", ErrParse, err)
	default:
		return fmt.Errorf("%w: anthropic API request failed: %v", ErrTransport, err)
	}
}
