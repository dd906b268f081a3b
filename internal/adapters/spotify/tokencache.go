package spotify

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// tokenStore is the narrow read/write interface over the OAuth token cache
// file. The file format is plain JSON-marshaled oauth2.Token; nothing else
// reads or writes it.
type tokenStore struct {
	path string
}

func (s *tokenStore) Read() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("token cache: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("token cache: corrupt file %s: %w", s.path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token cache: empty token in %s", s.path)
	}
	return &tok, nil
}

func (s *tokenStore) Write(tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("token cache: %w", err)
	}
	return nil
}
