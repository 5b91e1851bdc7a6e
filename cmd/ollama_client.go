package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// maxErrorBodyBytes bounds how much of an error response body is kept in the error.
const maxErrorBodyBytes = 4096

// OllamaClient defines the interface for interacting with Ollama.
// This allows us to mock the client for testing purposes.
type OllamaClient interface {
	Generate(ctx context.Context, req *ollama.GenerateRequest, fn ollama.GenerateResponseFunc) error
}

// RealOllamaClient is a wrapper around the actual Ollama client that implements OllamaClient.
type RealOllamaClient struct {
	client *ollama.Client
}

// NewRealOllamaClient creates a new RealOllamaClient for the host in OLLAMA_HOST.
func NewRealOllamaClient() *RealOllamaClient {
	return NewRealOllamaClientWithURL(envconfig.Host(), http.DefaultClient)
}

// NewRealOllamaClientWithURL creates a RealOllamaClient talking to base with the given HTTP client.
// Responses with a status of 400 or above are turned into *httpStatusError.
func NewRealOllamaClientWithURL(base *url.URL, httpClient *http.Client) *RealOllamaClient {
	hc := *httpClient
	hc.Transport = statusCheckTransport{base: httpClient.Transport}
	return &RealOllamaClient{client: ollama.NewClient(base, &hc)}
}

// Generate implements OllamaClient.Generate
func (r *RealOllamaClient) Generate(ctx context.Context, req *ollama.GenerateRequest, fn ollama.GenerateResponseFunc) error {
	return r.client.Generate(ctx, req, fn)
}

// httpStatusError reports an HTTP error status returned by the daemon.
type httpStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *httpStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %s", e.Status)
	}
	return fmt.Sprintf("status %s: %s", e.Status, e.Body)
}

// statusCheckTransport fails requests whose response status is 400 or above, even when
// the body is empty and the Ollama client would otherwise report nothing.
type statusCheckTransport struct {
	base http.RoundTripper
}

func (t statusCheckTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusBadRequest {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	_ = resp.Body.Close()
	return nil, &httpStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
