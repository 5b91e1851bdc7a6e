package cmd

import (
	"context"
	"strings"
)

// MockLLMProvider is a mock implementation of LLMProvider for testing.
type MockLLMProvider struct {
	// MockResponses maps prompt snippets to mock summaries.
	MockResponses map[string]string
	// DefaultResponse is returned when no matching snippet is found.
	DefaultResponse string
	// Err, when set, is returned from Summarize.
	Err error
	// Prompts records every prompt passed to Summarize.
	Prompts []string
}

// NewMockLLMProvider creates a new MockLLMProvider with default settings.
func NewMockLLMProvider() *MockLLMProvider {
	return &MockLLMProvider{
		MockResponses:   make(map[string]string),
		DefaultResponse: "This is a mock summary for testing purposes.",
	}
}

// Summarize implements LLMProvider.Summarize for the mock.
func (m *MockLLMProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	for key, response := range m.MockResponses {
		if strings.Contains(prompt, key) {
			return response, nil
		}
	}
	return m.DefaultResponse, nil
}

// Name implements LLMProvider.Name for the mock.
func (m *MockLLMProvider) Name() string {
	return "mock"
}
