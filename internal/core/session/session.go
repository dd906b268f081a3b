// Package session implements the conversation controller: a single-threaded,
// turn-based loop that accepts either a free-text vibe description or a menu
// command and preserves session state between turns.
package session

import (
	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// State is the controller's position in the conversation.
type State int

const (
	StateAwaitingVibe State = iota
	StateProfileReady
	StatePreviewShown
	StatePlaylistCreated
	StateSettingsAdjusted
	StateExited
)

// Ready reports whether a profile/track pair is installed and actionable.
func (s State) Ready() bool {
	switch s {
	case StateProfileReady, StatePreviewShown, StatePlaylistCreated, StateSettingsAdjusted:
		return true
	}
	return false
}

func (s State) String() string {
	switch s {
	case StateAwaitingVibe:
		return "awaiting_vibe"
	case StateProfileReady:
		return "profile_ready"
	case StatePreviewShown:
		return "preview_shown"
	case StatePlaylistCreated:
		return "playlist_created"
	case StateSettingsAdjusted:
		return "settings_adjusted"
	case StateExited:
		return "exited"
	}
	return "unknown"
}

// Settings are the adjustable knobs of a session.
type Settings struct {
	Limit  int
	Market string
	Name   string // custom playlist name; empty means derive from the vibe
}

// Session holds the state carried across turns. It owns at most one pending
// profile/track pair; a new vibe request replaces the pair wholesale.
type Session struct {
	Vibe     string
	Profile  *domain.AudioProfile
	Tracks   []domain.Track
	Settings Settings

	// stale marks the track list as out of date after a settings change;
	// the next preview or create must re-run the search before use.
	stale bool
}

// NewSession builds a session with the given defaults applied.
func NewSession(defaults Settings) *Session {
	if defaults.Limit == 0 {
		defaults.Limit = domain.DefaultTrackLimit
	}
	return &Session{Settings: defaults}
}

func (s *Session) clearPair() {
	s.Vibe = ""
	s.Profile = nil
	s.Tracks = nil
	s.stale = false
}

func (s *Session) install(vibe string, profile domain.AudioProfile, tracks []domain.Track) {
	s.Vibe = vibe
	s.Profile = &profile
	s.Tracks = tracks
	s.stale = false
}

// PlaylistName resolves the name the next create action will use.
func (s *Session) PlaylistName() string {
	if s.Settings.Name != "" {
		return domain.SanitizePlaylistName(s.Settings.Name)
	}
	return domain.DefaultPlaylistName(s.Vibe)
}
