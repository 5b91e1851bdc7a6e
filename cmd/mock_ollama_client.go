package cmd

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// MockOllamaClient is a mock implementation of OllamaClient for testing.
type MockOllamaClient struct {
	// Map of prompt snippets to mock responses
	MockResponses map[string]string
	// Default response if no match is found
	DefaultResponse string
	// Err, when set, is returned instead of a response
	Err error
	// Requests records every request passed to Generate
	Requests []*ollama.GenerateRequest
}

// NewMockOllamaClient creates a new MockOllamaClient with default responses.
func NewMockOllamaClient() *MockOllamaClient {
	return &MockOllamaClient{
		MockResponses:   make(map[string]string),
		DefaultResponse: "This is a mock summary for testing purposes.",
	}
}

// Generate implements OllamaClient.Generate for the mock.
func (m *MockOllamaClient) Generate(ctx context.Context, req *ollama.GenerateRequest, fn ollama.GenerateResponseFunc) error {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return m.Err
	}

	// Find a matching mock response based on the prompt
	summary := m.DefaultResponse
	for key, response := range m.MockResponses {
		if strings.Contains(req.Prompt, key) {
			summary = response
			break
		}
	}

	return fn(ollama.GenerateResponse{
		Model:    req.Model,
		Response: summary,
		Done:     true,
	})
}
