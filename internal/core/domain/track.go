package domain

// Track is a single search hit, normalized from the Spotify wire format.
type Track struct {
	ID          string
	Title       string
	Artist      string // comma-joined artist names
	Album       string
	URI         string // spotify:track:<id>, used when adding to a playlist
	ExternalURL string
	DurationMs  int
}
