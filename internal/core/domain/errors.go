package domain

import "errors"

var (
	// ErrNoTracks indicates a search produced no usable tracks for a profile.
	ErrNoTracks = errors.New("domain: no tracks matched the vibe")

	// ErrNotAuthenticated indicates the user OAuth flow has not been completed.
	ErrNotAuthenticated = errors.New("domain: spotify user authorization required")

	// ErrInvalidProfile indicates LLM output failed audio-profile validation.
	ErrInvalidProfile = errors.New("domain: invalid audio profile")

	// ErrInvalidVibe indicates the vibe text itself is unusable.
	ErrInvalidVibe = errors.New("domain: invalid vibe request")
)
