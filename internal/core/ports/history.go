package ports

import (
	"context"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// HistoryRepository records playlists after they are created. It is a local
// log of outcomes; session state itself is never persisted.
type HistoryRepository interface {
	SaveRecord(ctx context.Context, rec domain.PlaylistRecord) error
	Recent(ctx context.Context, limit int) ([]domain.PlaylistRecord, error)
}
