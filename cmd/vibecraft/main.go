package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/soundcheck-labs/vibecraft/internal/adapters/groq"
	"github.com/soundcheck-labs/vibecraft/internal/adapters/ollama"
	"github.com/soundcheck-labs/vibecraft/internal/adapters/spotify"
	"github.com/soundcheck-labs/vibecraft/internal/adapters/sqlite"
	"github.com/soundcheck-labs/vibecraft/internal/cli"
	"github.com/soundcheck-labs/vibecraft/internal/config"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
	"github.com/soundcheck-labs/vibecraft/internal/logging"
)

func main() {
	// Crash early if required config is missing; nothing past this point is
	// allowed to be fatal.
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("FATAL: %v", err)
	}
	logging.Init(cfg.Logging)

	// Driven adapters.
	var interp ports.VibeInterpreter
	switch cfg.LLM.Provider {
	case config.ProviderGroq:
		interp = groq.NewClient(cfg.LLM.GroqAPIKey, "", cfg.LLM.GroqModel, 0)
	case config.ProviderOllama:
		interp = ollama.NewClient(cfg.LLM.OllamaBaseURL, cfg.LLM.OllamaModel, 0)
	}

	spotifyClient := spotify.New(spotify.Config{
		ClientID:       cfg.Spotify.ClientID,
		ClientSecret:   cfg.Spotify.ClientSecret,
		RedirectURL:    cfg.Spotify.RedirectURI,
		TokenCachePath: cfg.Spotify.TokenCache,
		Timeout:        cfg.Spotify.Timeout,
		MaxRetries:     cfg.Spotify.MaxRetries,
		RetryBackoff:   cfg.Spotify.RetryBackoff,
		GenreCacheTTL:  cfg.Spotify.GenreTTL,
	})

	// History is a convenience, not a requirement: a broken database only
	// disables the history command and recording.
	var history ports.HistoryRepository
	if dbAdapter, err := sqlite.NewAdapter(cfg.HistoryDB); err != nil {
		logrus.WithError(err).Warn("history database unavailable, continuing without it")
	} else {
		history = dbAdapter
		defer dbAdapter.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := cli.Deps{
		Cfg:     cfg,
		Interp:  interp,
		Music:   spotifyClient,
		History: history,
	}
	if err := cli.ExecuteContext(ctx, deps); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
