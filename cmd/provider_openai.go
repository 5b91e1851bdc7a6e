package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultOpenAIModel is used when OPENAI_MODEL is not set.
	DefaultOpenAIModel = "gpt-4"
	// DefaultOpenAIBaseURL is the public OpenAI API root.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1/"
	// MaxSummaryTokens caps the length of the summary for the cloud providers.
	MaxSummaryTokens = 1000
)

// OpenAIProvider implements LLMProvider using the OpenAI chat completions API.
// Works with OpenAI and other compatible endpoints through OPENAI_BASE_URL.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	model   string
	opts    []option.RequestOption
}

// NewOpenAIProvider creates a new OpenAIProvider. The key is checked by Summarize so that
// a missing key only matters when this provider is actually used.
func NewOpenAIProvider(apiKey, baseURL, model string, opts ...option.RequestOption) *OpenAIProvider {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		opts:    opts,
	}
}

// Summarize implements LLMProvider.Summarize using the chat completions API.
func (o *OpenAIProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY environment variable not set, add your OpenAI API key to the .env file", ErrConfiguration)
	}

	opts := append([]option.RequestOption{
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(o.baseURL),
		option.WithMaxRetries(0),
	}, o.opts...)
	client := openai.NewClient(opts...)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(MaxSummaryTokens),
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: unexpected response format from OpenAI: no choices", ErrParse)
	}
	message := completion.Choices[0].Message
	if !message.JSON.Content.Valid() {
		return "", fmt.Errorf("%w: unexpected response format from OpenAI: first choice has no message content", ErrParse)
	}
	return message.Content, nil
}

// Name implements LLMProvider.Name.
func (o *OpenAIProvider) Name() string {
	return string(ProviderOpenAI)
}

// classifyOpenAIError maps SDK errors to error kinds. The SDK reports undecodable bodies
// as "error parsing response json".
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: openai API returned status %d: %s", ErrTransport, apiErr.StatusCode, apiErr.Message)
	case errors.As(err, &syntaxErr), isResponseDecodeError(err):
		return fmt.Errorf("%w: unexpected response format from OpenAI: %v", ErrParse, err)
	default:
		return fmt.Errorf("%w: openai API request failed: %v", ErrTransport, err)
	}
}

// isResponseDecodeError reports whether a Stainless-generated SDK failed to decode a
// response body that it had already received.
func isResponseDecodeError(err error) bool {
	return strings.Contains(err.Error(), "error parsing response json")
}
