// Package config loads settings from the environment, with an optional .env
// file for local development. Validation failures here are the only fatal
// errors in the program.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderOllama = "ollama"
)

// Spotify holds the Spotify API settings.
type Spotify struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Market       string
	Timeout      time.Duration
	TokenCache   string
	MaxRetries   int
	RetryBackoff time.Duration
	GenreTTL     time.Duration
}

// LLM holds the vibe interpreter settings.
type LLM struct {
	Provider      string
	GroqAPIKey    string
	GroqModel     string
	OllamaBaseURL string
	OllamaModel   string
}

// Logging holds the log output settings.
type Logging struct {
	Level string
	File  string
}

// Config is the top-level configuration struct.
type Config struct {
	Spotify   Spotify
	LLM       LLM
	Logging   Logging
	HistoryDB string
}

// Load reads .env (if present), applies defaults, and validates the result.
func Load() (*Config, error) {
	// .env is a local-dev convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SPOTIFY_REDIRECT_URI", "http://127.0.0.1:8888/callback")
	v.SetDefault("SPOTIFY_MARKET", "US")
	v.SetDefault("SPOTIFY_TIMEOUT_SECONDS", 30)
	v.SetDefault("SPOTIFY_TOKEN_CACHE", ".spotify_token.json")
	v.SetDefault("SPOTIFY_MAX_RETRIES", 3)
	v.SetDefault("SPOTIFY_RETRY_BACKOFF_MS", 500)
	v.SetDefault("GENRE_CACHE_TTL_SECONDS", 86400)
	v.SetDefault("LLM_PROVIDER", ProviderGroq)
	v.SetDefault("GROQ_MODEL", "llama-3.1-8b-instant")
	v.SetDefault("OLLAMA_BASE_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "llama3.1")
	v.SetDefault("HISTORY_DB", "vibecraft.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")

	cfg := &Config{
		Spotify: Spotify{
			ClientID:     v.GetString("SPOTIFY_CLIENT_ID"),
			ClientSecret: v.GetString("SPOTIFY_CLIENT_SECRET"),
			RedirectURI:  v.GetString("SPOTIFY_REDIRECT_URI"),
			Market:       strings.ToUpper(v.GetString("SPOTIFY_MARKET")),
			Timeout:      time.Duration(v.GetInt("SPOTIFY_TIMEOUT_SECONDS")) * time.Second,
			TokenCache:   v.GetString("SPOTIFY_TOKEN_CACHE"),
			MaxRetries:   v.GetInt("SPOTIFY_MAX_RETRIES"),
			RetryBackoff: time.Duration(v.GetInt("SPOTIFY_RETRY_BACKOFF_MS")) * time.Millisecond,
			GenreTTL:     time.Duration(v.GetInt("GENRE_CACHE_TTL_SECONDS")) * time.Second,
		},
		LLM: LLM{
			Provider:      strings.ToLower(v.GetString("LLM_PROVIDER")),
			GroqAPIKey:    v.GetString("GROQ_API_KEY"),
			GroqModel:     v.GetString("GROQ_MODEL"),
			OllamaBaseURL: v.GetString("OLLAMA_BASE_URL"),
			OllamaModel:   v.GetString("OLLAMA_MODEL"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		HistoryDB: v.GetString("HISTORY_DB"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Spotify.ClientID == "" {
		return fmt.Errorf("config: SPOTIFY_CLIENT_ID is required")
	}
	if c.Spotify.ClientSecret == "" {
		return fmt.Errorf("config: SPOTIFY_CLIENT_SECRET is required")
	}

	switch c.LLM.Provider {
	case ProviderGroq:
		if c.LLM.GroqAPIKey == "" {
			return fmt.Errorf("config: GROQ_API_KEY is required when LLM_PROVIDER=groq")
		}
	case ProviderOllama:
		// no credentials needed
	default:
		return fmt.Errorf("config: unknown LLM_PROVIDER %q (want groq or ollama)", c.LLM.Provider)
	}

	if len(c.Spotify.Market) != 2 {
		return fmt.Errorf("config: SPOTIFY_MARKET must be a two-letter country code, got %q", c.Spotify.Market)
	}

	return nil
}
