package config

import (
	"errors"
	"os"
)

const (
	// DefaultModel is the Gemini model used when GEMINI_MODEL is not set.
	DefaultModel = "gemini-2.5-flash-preview-05-20"

	// DefaultAddr is the listen address used when SERVER_ADDR is not set.
	DefaultAddr = "0.0.0.0:5001"
)

// Config holds the process-wide configuration. It is built once at startup
// and passed by injection; nothing mutates it afterwards.
type Config struct {
	// APIKey authenticates against the Gemini API.
	APIKey string
	// Model is the Gemini model identifier, fixed at startup.
	Model string
	// Addr is the HTTP listen address.
	Addr string
}

// Load reads the configuration from the environment. The API key is
// required; model and listen address fall back to defaults.
func Load() (*Config, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("config: GOOGLE_API_KEY is not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = DefaultModel
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = DefaultAddr
	}

	return &Config{
		APIKey: apiKey,
		Model:  model,
		Addr:   addr,
	}, nil
}
