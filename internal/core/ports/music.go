package ports

import (
	"context"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// MusicProvider wraps the streaming service the tool searches and publishes to.
type MusicProvider interface {
	// AvailableGenres returns the seed genres accepted in search queries.
	AvailableGenres(ctx context.Context) ([]string, error)

	// SearchTracks finds up to limit tracks matching the profile, in order.
	// An empty result set is an error: a profile without tracks is not useful.
	SearchTracks(ctx context.Context, profile domain.AudioProfile, limit int, market string) ([]domain.Track, error)

	// CreatePlaylist materializes a playlist with the given tracks on the
	// user's account and returns its external metadata.
	CreatePlaylist(ctx context.Context, name, description string, tracks []domain.Track) (domain.PlaylistResult, error)
}
