package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded from the working directory before the environment is parsed.
const DefaultEnvFile = ".env"

// Config holds the backend settings read from the environment.
// The Ollama host is resolved by the Ollama client itself from OLLAMA_HOST.
type Config struct {
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1/"`
	OpenAIModel      string `env:"OPENAI_MODEL"       envDefault:"gpt-4"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com/"`
	AnthropicModel   string `env:"ANTHROPIC_MODEL"    envDefault:"claude-3-sonnet-20240229"`
	OllamaModel      string `env:"OLLAMA_MODEL"       envDefault:"gemma3:latest"`
}

// loadConfig loads envFile into the process environment, if it exists, and parses Config.
// Variables already set in the environment take precedence over the file.
func loadConfig(envFile string) (Config, bool, error) {
	loaded := true
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, fmt.Errorf("%w: failed to load %s: %v", ErrConfiguration, envFile, err)
		}
		loaded = false
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, loaded, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, loaded, nil
}
