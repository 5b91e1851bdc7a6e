package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	ollama "github.com/ollama/ollama/api"
)

// DefaultOllamaModel is used when OLLAMA_MODEL is not set.
const DefaultOllamaModel = "gemma3:latest"

// OllamaProvider implements LLMProvider using the local Ollama daemon.
type OllamaProvider struct {
	client OllamaClient
	model  string
}

// NewOllamaProvider creates a new OllamaProvider for the daemon in OLLAMA_HOST.
func NewOllamaProvider(model string) *OllamaProvider {
	return NewOllamaProviderFromClient(NewRealOllamaClient(), model)
}

// NewOllamaProviderFromClient creates an OllamaProvider from an existing OllamaClient.
// Used for testing with MockOllamaClient.
func NewOllamaProviderFromClient(client OllamaClient, model string) *OllamaProvider {
	if model == "" {
		model = DefaultOllamaModel
	}
	return &OllamaProvider{client: client, model: model}
}

// Summarize implements LLMProvider.Summarize using the non-streaming generate endpoint.
// A response without a "response" field yields an empty string.
func (o *OllamaProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var summary strings.Builder
	err := o.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		summary.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", classifyOllamaError(err)
	}
	return summary.String(), nil
}

// Name implements LLMProvider.Name.
func (o *OllamaProvider) Name() string {
	return string(ProviderOllama)
}

// classifyOllamaError maps client errors to error kinds. Anything that is not an HTTP
// status or a network failure comes from decoding the reply and is reported as ErrParse.
func classifyOllamaError(err error) error {
	var httpErr *httpStatusError
	var statusErr ollama.StatusError
	var netErr net.Error
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: could not connect to Ollama, make sure Ollama is running: %v", ErrTransport, err)
	case errors.As(err, &httpErr):
		return fmt.Errorf("%w: ollama returned %v", ErrTransport, httpErr)
	case errors.As(err, &statusErr):
		return fmt.Errorf("%w: ollama returned status %d: %s", ErrTransport, statusErr.StatusCode, statusErr.ErrorMessage)
	case errors.As(err, &netErr), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: ollama request failed: %v", ErrTransport, err)
	default:
		return fmt.Errorf("%w: invalid response from Ollama: %v", ErrParse, err)
	}
}
