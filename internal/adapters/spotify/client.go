// Package spotify wraps the Spotify Web API: OAuth-based authentication with
// a local file token cache, track search driven by audio-feature profiles,
// and playlist creation.
package spotify

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spotify.com/v1"
	defaultTimeout = 30 * time.Second

	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond

	defaultGenreTTL = 24 * time.Hour
)

// Config carries everything the adapter needs. Zero values fall back to
// sensible defaults.
type Config struct {
	ClientID       string
	ClientSecret   string
	RedirectURL    string
	TokenCachePath string
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	GenreCacheTTL  time.Duration

	// AuthPrompt is invoked with the authorization URL when the user OAuth
	// flow has to run. The CLI points this at its renderer.
	AuthPrompt func(authURL string)
}

// Client is the HTTP client for the Spotify adapter.
type Client struct {
	httpClient *http.Client // app auth (client credentials), search and genres
	userClient *http.Client // user auth, playlist creation; built lazily
	auth       *Authenticator
	baseURL    string

	maxRetries  int
	baseBackoff time.Duration
	log         *logrus.Entry

	genreTTL time.Duration
	genres   []string
	genresAt time.Time
	now      func() time.Time
}

var _ ports.MusicProvider = (*Client)(nil)

// New constructs the production client with both OAuth flows wired.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultBackoff
	}
	if cfg.GenreCacheTTL <= 0 {
		cfg.GenreCacheTTL = defaultGenreTTL
	}

	auth := NewAuthenticator(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, cfg.TokenCachePath, cfg.AuthPrompt)
	appClient := auth.AppClient()
	appClient.Timeout = cfg.Timeout

	return &Client{
		httpClient:  appClient,
		auth:        auth,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.RetryBackoff,
		log:         logrus.WithField("component", "spotify"),
		genreTTL:    cfg.GenreCacheTTL,
		now:         time.Now,
	}
}

// Authenticator exposes the OAuth helper so the auth subcommand can force a
// fresh user authorization.
func (c *Client) Authenticator() *Authenticator { return c.auth }
