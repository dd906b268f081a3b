package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FallbackGenres is the static Spotify seed-genre list used when the API
// endpoint is unavailable.
var FallbackGenres = []string{
	"acoustic", "afrobeat", "alt-rock", "alternative", "ambient", "anime",
	"bluegrass", "blues", "bossanova", "brazil", "breakbeat", "british",
	"cantopop", "chill", "classical", "club", "country", "dance", "dancehall",
	"death-metal", "deep-house", "disco", "drum-and-bass", "dub", "electronic",
	"emo", "folk", "french", "funk", "garage", "german", "gospel", "goth",
	"grunge", "happy", "hard-rock", "hardcore", "heavy-metal", "hip-hop",
	"holidays", "house", "indian", "indie", "indie-pop", "industrial", "j-pop",
	"j-rock", "jazz", "k-pop", "latin", "metal", "metalcore", "movies",
	"opera", "party", "piano", "pop", "power-pop", "progressive-house",
	"psych-rock", "punk", "punk-rock", "r-n-b", "reggae", "reggaeton",
	"road-trip", "rock", "rock-n-roll", "rockabilly", "romance", "sad",
	"salsa", "samba", "sertanejo", "show-tunes", "singer-songwriter", "ska",
	"sleep", "soul", "soundtracks", "spanish", "study", "summer", "synth-pop",
	"tango", "techno", "trance", "trip-hop", "work-out", "world-music",
}

// AvailableGenres returns Spotify's seed genres. Results are cached for the
// configured TTL; on fetch failure the static fallback list is returned.
func (c *Client) AvailableGenres(ctx context.Context) ([]string, error) {
	if c.genres != nil && c.now().Sub(c.genresAt) < c.genreTTL {
		return c.genres, nil
	}

	genres, err := c.fetchGenres(ctx)
	if err != nil {
		c.log.Warnf("genre fetch failed, using static fallback: %v", err)
		return FallbackGenres, nil
	}

	c.genres = genres
	c.genresAt = c.now()
	c.log.Infof("fetched %d seed genres", len(genres))
	return genres, nil
}

func (c *Client) fetchGenres(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/recommendations/available-genre-seeds", nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: build genres request: %w", err)
	}

	resp, err := c.doRequestWithRetry(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify: genres request returned status %d", resp.StatusCode)
	}

	var parsed genreSeedsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("spotify: decode genres response: %w", err)
	}
	if len(parsed.Genres) == 0 {
		return nil, fmt.Errorf("spotify: genres response was empty")
	}
	return parsed.Genres, nil
}
