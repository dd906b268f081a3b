package spotify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

const (
	authURL  = "https://accounts.spotify.com/authorize"
	tokenURL = "https://accounts.spotify.com/api/token"

	defaultRedirectURL = "http://127.0.0.1:8888/callback"
	defaultCachePath   = ".spotify_token.json"

	// authFlowTimeout bounds how long we wait for the browser round trip.
	authFlowTimeout = 3 * time.Minute
)

var userScopes = []string{"playlist-modify-public", "playlist-modify-private"}

// Authenticator manages both Spotify OAuth flows: client credentials for
// search, and the authorization-code flow (with a loopback callback server
// and a file token cache) for playlist writes.
type Authenticator struct {
	conf   *oauth2.Config
	cc     *clientcredentials.Config
	cache  *tokenStore
	prompt func(authURL string)
	log    *logrus.Entry
}

func NewAuthenticator(clientID, clientSecret, redirectURL, cachePath string, prompt func(string)) *Authenticator {
	if redirectURL == "" {
		redirectURL = defaultRedirectURL
	}
	if cachePath == "" {
		cachePath = defaultCachePath
	}
	if prompt == nil {
		prompt = func(u string) { fmt.Fprintf(os.Stderr, "Open this URL to authorize Spotify:\n%s\n", u) }
	}
	return &Authenticator{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       userScopes,
			Endpoint:     oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL},
		},
		cc: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
		cache:  &tokenStore{path: cachePath},
		prompt: prompt,
		log:    logrus.WithField("component", "spotify.auth"),
	}
}

// AppClient returns an HTTP client carrying the client-credentials token,
// refreshed automatically.
func (a *Authenticator) AppClient() *http.Client {
	return a.cc.Client(context.Background())
}

// Authorized reports whether a cached user token exists.
func (a *Authenticator) Authorized() bool {
	_, err := a.cache.Read()
	return err == nil
}

// UserClient returns an HTTP client carrying the user token. If no token is
// cached the interactive authorization flow runs first. Refreshed tokens are
// written back to the cache.
func (a *Authenticator) UserClient(ctx context.Context) (*http.Client, error) {
	tok, err := a.cache.Read()
	if err != nil {
		a.log.Debug("no cached user token, starting authorization flow")
		tok, err = a.Authorize(ctx)
		if err != nil {
			return nil, err
		}
	}

	src := &persistingSource{
		src:   a.conf.TokenSource(ctx, tok),
		cache: a.cache,
		last:  tok.AccessToken,
		log:   a.log,
	}
	return oauth2.NewClient(ctx, src), nil
}

// Authorize runs the browser-based authorization-code flow: it prints the
// consent URL, serves the loopback redirect to capture the code, exchanges
// it and caches the resulting token.
func (a *Authenticator) Authorize(ctx context.Context) (*oauth2.Token, error) {
	redirect, err := url.Parse(a.conf.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("spotify auth: invalid redirect url: %w", err)
	}

	state := uuid.NewString()
	type callbackResult struct {
		code string
		err  error
	}
	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callbackResult{err: errors.New("state mismatch in callback")}
			return
		}
		if errMsg := q.Get("error"); errMsg != "" {
			http.Error(w, "authorization denied", http.StatusForbidden)
			results <- callbackResult{err: fmt.Errorf("authorization denied: %s", errMsg)}
			return
		}
		fmt.Fprintln(w, "Authorization complete. You can close this tab and return to the terminal.")
		results <- callbackResult{code: q.Get("code")}
	})

	listener, err := net.Listen("tcp", redirect.Host)
	if err != nil {
		return nil, fmt.Errorf("spotify auth: listen on %s: %w", redirect.Host, err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() { _ = srv.Serve(listener) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.prompt(a.conf.AuthCodeURL(state))

	flowCtx, cancel := context.WithTimeout(ctx, authFlowTimeout)
	defer cancel()

	var code string
	select {
	case res := <-results:
		if res.err != nil {
			return nil, fmt.Errorf("spotify auth: %w", res.err)
		}
		code = res.code
	case <-flowCtx.Done():
		return nil, fmt.Errorf("spotify auth: authorization timed out: %w", flowCtx.Err())
	}

	tok, err := a.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("spotify auth: code exchange failed: %w", err)
	}
	if err := a.cache.Write(tok); err != nil {
		a.log.WithError(err).Warn("failed to cache token")
	}
	a.log.Info("spotify user authorization complete")
	return tok, nil
}

// persistingSource wraps a TokenSource and writes refreshed tokens back to
// the cache file so the next run skips the browser flow.
type persistingSource struct {
	src   oauth2.TokenSource
	cache *tokenStore
	last  string
	log   *logrus.Entry
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotAuthenticated, err)
	}
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		if err := p.cache.Write(tok); err != nil {
			p.log.WithError(err).Warn("failed to persist refreshed token")
		}
	}
	return tok, nil
}
