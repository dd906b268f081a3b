package spotify

// Raw Spotify API response shapes. Only the fields the adapter reads.

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type artistObject struct {
	Name string `json:"name"`
}

type albumObject struct {
	Name string `json:"name"`
}

type trackObject struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	URI          string         `json:"uri"`
	DurationMs   int            `json:"duration_ms"`
	Artists      []artistObject `json:"artists"`
	Album        albumObject    `json:"album"`
	ExternalURLs externalURLs   `json:"external_urls"`
}

type searchResponse struct {
	Tracks struct {
		Items []trackObject `json:"items"`
	} `json:"tracks"`
}

type genreSeedsResponse struct {
	Genres []string `json:"genres"`
}

type userObject struct {
	ID string `json:"id"`
}

type playlistObject struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ExternalURLs externalURLs `json:"external_urls"`
}

type createPlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
}

type addTracksRequest struct {
	URIs []string `json:"uris"`
}
