package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// maxSearchQueries caps how many search calls a single recommendation makes.
const maxSearchQueries = 2

// SearchTracks finds tracks matching the profile via the search API. Queries
// are built from the seed genres plus mood keywords derived from valence and
// energy; results are deduplicated by track ID.
func (c *Client) SearchTracks(ctx context.Context, profile domain.AudioProfile, limit int, market string) ([]domain.Track, error) {
	queries := buildSearchQueries(profile)
	c.log.WithField("genres", profile.Genres).Infof("searching tracks with %d queries", len(queries))

	tracks := make([]domain.Track, 0, limit)
	seen := make(map[string]bool)

	for _, query := range queries {
		if len(tracks) >= limit {
			break
		}

		items, err := c.searchOnce(ctx, query, limit, market)
		if err != nil {
			c.log.Warnf("search query %q failed: %v", query, err)
			continue
		}

		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			tracks = append(tracks, mapTrackToDomain(item))
			if len(tracks) >= limit {
				break
			}
		}
	}

	if len(tracks) == 0 {
		return nil, domain.ErrNoTracks
	}

	c.log.Infof("found %d tracks", len(tracks))
	return tracks, nil
}

func (c *Client) searchOnce(ctx context.Context, query string, limit int, market string) ([]trackObject, error) {
	pageSize := limit * 3
	if pageSize > 50 {
		pageSize = 50
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(pageSize))
	if market != "" {
		params.Set("market", market)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: build search request: %w", err)
	}

	resp, err := c.doRequestWithRetry(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify: search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("spotify: decode search response: %w", err)
	}
	return parsed.Tracks.Items, nil
}

// buildSearchQueries turns a profile into search queries: one per seed genre,
// then mood keywords when valence or energy sit at the extremes. Only the
// first maxSearchQueries are used.
func buildSearchQueries(profile domain.AudioProfile) []string {
	queries := make([]string, 0, len(profile.Genres)+2)
	for _, genre := range profile.Genres {
		queries = append(queries, "genre:"+genre)
	}

	switch {
	case profile.Valence > 0.7:
		queries = append(queries, "happy OR upbeat OR joyful")
	case profile.Valence < 0.3:
		queries = append(queries, "sad OR melancholy OR dark")
	}

	switch {
	case profile.Energy > 0.7:
		queries = append(queries, "energetic OR intense")
	case profile.Energy < 0.3:
		queries = append(queries, "calm OR chill OR ambient")
	}

	if len(queries) > maxSearchQueries {
		queries = queries[:maxSearchQueries]
	}
	return queries
}
