package spotify

import (
	"fmt"
	"strings"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// mapTrackToDomain converts a raw Spotify track to a clean domain track.
func mapTrackToDomain(st trackObject) domain.Track {
	names := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		names = append(names, a.Name)
	}

	uri := st.URI
	if uri == "" && st.ID != "" {
		uri = fmt.Sprintf("spotify:track:%s", st.ID)
	}

	return domain.Track{
		ID:          st.ID,
		Title:       st.Name,
		Artist:      strings.Join(names, ", "),
		Album:       st.Album.Name,
		URI:         uri,
		ExternalURL: st.ExternalURLs.Spotify,
		DurationMs:  st.DurationMs,
	}
}
