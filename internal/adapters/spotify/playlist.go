package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// addTracksBatchSize is the maximum number of URIs one add-items call accepts.
const addTracksBatchSize = 100

// CreatePlaylist creates a public playlist on the current user's account and
// adds the tracks in batches. Requires user authorization; the OAuth flow runs
// if no cached token exists.
func (c *Client) CreatePlaylist(ctx context.Context, name, description string, tracks []domain.Track) (domain.PlaylistResult, error) {
	client, err := c.userHTTP(ctx)
	if err != nil {
		return domain.PlaylistResult{}, err
	}

	user, err := c.currentUser(ctx, client)
	if err != nil {
		return domain.PlaylistResult{}, err
	}

	playlistName := domain.SanitizePlaylistName(name)
	playlist, err := c.createUserPlaylist(ctx, client, user.ID, playlistName, description)
	if err != nil {
		return domain.PlaylistResult{}, err
	}

	uris := make([]string, len(tracks))
	for i, track := range tracks {
		uris[i] = track.URI
	}
	for start := 0; start < len(uris); start += addTracksBatchSize {
		end := start + addTracksBatchSize
		if end > len(uris) {
			end = len(uris)
		}
		if err := c.addTracks(ctx, client, playlist.ID, uris[start:end]); err != nil {
			return domain.PlaylistResult{}, err
		}
	}

	c.log.WithField("playlist_id", playlist.ID).Infof("created playlist %q with %d tracks", playlistName, len(tracks))
	return domain.PlaylistResult{
		ID:         playlist.ID,
		URL:        playlist.ExternalURLs.Spotify,
		Name:       playlistName,
		TrackCount: len(tracks),
	}, nil
}

// userHTTP returns the user-authorized client, building it on first use.
// Tests may preset userClient to bypass the OAuth flow.
func (c *Client) userHTTP(ctx context.Context) (*http.Client, error) {
	if c.userClient != nil {
		return c.userClient, nil
	}
	if c.auth == nil {
		return c.httpClient, nil
	}

	client, err := c.auth.UserClient(ctx)
	if err != nil {
		return nil, err
	}
	client.Timeout = c.httpClient.Timeout
	c.userClient = client
	return client, nil
}

func (c *Client) currentUser(ctx context.Context, client *http.Client) (userObject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return userObject{}, fmt.Errorf("spotify: build profile request: %w", err)
	}

	resp, err := c.doRequestWithRetry(client, req)
	if err != nil {
		return userObject{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return userObject{}, fmt.Errorf("spotify: profile request returned status %d", resp.StatusCode)
	}

	var user userObject
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return userObject{}, fmt.Errorf("spotify: decode profile response: %w", err)
	}
	return user, nil
}

func (c *Client) createUserPlaylist(ctx context.Context, client *http.Client, userID, name, description string) (playlistObject, error) {
	body, err := json.Marshal(createPlaylistRequest{
		Name:        name,
		Description: description,
		Public:      true,
	})
	if err != nil {
		return playlistObject{}, fmt.Errorf("spotify: encode playlist request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/playlists", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return playlistObject{}, fmt.Errorf("spotify: build playlist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(client, req)
	if err != nil {
		return playlistObject{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return playlistObject{}, fmt.Errorf("spotify: create playlist returned status %d", resp.StatusCode)
	}

	var playlist playlistObject
	if err := json.NewDecoder(resp.Body).Decode(&playlist); err != nil {
		return playlistObject{}, fmt.Errorf("spotify: decode playlist response: %w", err)
	}
	return playlist, nil
}

func (c *Client) addTracks(ctx context.Context, client *http.Client, playlistID string, uris []string) error {
	body, err := json.Marshal(addTracksRequest{URIs: uris})
	if err != nil {
		return fmt.Errorf("spotify: encode add-tracks request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/playlists/%s/tracks", c.baseURL, playlistID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("spotify: build add-tracks request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doRequestWithRetry(client, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify: add tracks returned status %d", resp.StatusCode)
	}
	return nil
}
