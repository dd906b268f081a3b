package domain

import (
	"regexp"
	"strings"
	"time"
)

// PlaylistResult is the metadata of a playlist materialized on Spotify.
type PlaylistResult struct {
	ID         string
	URL        string
	Name       string
	TrackCount int
}

// PlaylistRecord is the locally stored trace of a created playlist.
type PlaylistRecord struct {
	ID         string // local record id
	PlaylistID string
	URL        string
	Name       string
	Vibe       string
	Profile    AudioProfile
	TrackCount int
	CreatedAt  time.Time
}

const (
	maxPlaylistNameLen = 100
	fallbackName       = "Vibecraft Playlist"
	defaultNameVibeCut = 40
	defaultNamePrefix  = "Vibe: "
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s:-]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// SanitizePlaylistName strips characters Spotify rejects and trims length.
// An empty result falls back to a generic name.
func SanitizePlaylistName(name string) string {
	cleaned := nonWordRe.ReplaceAllString(name, "")
	cleaned = strings.TrimSpace(multiSpaceRe.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		cleaned = fallbackName
	}
	if len(cleaned) > maxPlaylistNameLen {
		cleaned = cleaned[:maxPlaylistNameLen]
	}
	return cleaned
}

// DefaultPlaylistName derives the playlist name from the vibe description.
func DefaultPlaylistName(vibe string) string {
	vibe = strings.TrimSpace(vibe)
	runes := []rune(vibe)
	if len(runes) > defaultNameVibeCut {
		vibe = string(runes[:defaultNameVibeCut])
	}
	return SanitizePlaylistName(defaultNamePrefix + vibe)
}
