package ports

import (
	"context"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// VibeInterpreter translates free-text mood descriptions into structured
// audio-feature targets. Implementations are polymorphic over LLM provider.
type VibeInterpreter interface {
	// InterpretVibe produces a validated AudioProfile for the vibe text.
	// genres is the whitelist of seed genres the model may choose from.
	InterpretVibe(ctx context.Context, vibe string, genres []string) (domain.AudioProfile, error)

	// SuggestPlaylistName asks the model for a short creative playlist name.
	SuggestPlaylistName(ctx context.Context, vibe string) (string, error)
}
