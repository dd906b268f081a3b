package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinVibeLen and MaxVibeLen bound the free-text vibe description.
	MinVibeLen = 5
	MaxVibeLen = 500

	// MinTrackLimit and MaxTrackLimit bound the requested playlist size.
	MinTrackLimit = 5
	MaxTrackLimit = 50

	// DefaultTrackLimit is used when the user does not ask for a size.
	DefaultTrackLimit = 20
)

// VibeRequest is a validated user request. It is immutable once submitted
// for a turn.
type VibeRequest struct {
	Text            string
	Limit           int
	EnergyOverride  *float64
	ValenceOverride *float64
	DryRun          bool
}

// NewVibeRequest validates and constructs a request. A zero limit falls back
// to DefaultTrackLimit.
func NewVibeRequest(text string, limit int) (VibeRequest, error) {
	text = strings.TrimSpace(text)
	if err := ValidateVibeText(text); err != nil {
		return VibeRequest{}, err
	}
	if limit == 0 {
		limit = DefaultTrackLimit
	}
	if limit < MinTrackLimit || limit > MaxTrackLimit {
		return VibeRequest{}, fmt.Errorf("%w: limit %d outside [%d,%d]", ErrInvalidVibe, limit, MinTrackLimit, MaxTrackLimit)
	}
	return VibeRequest{Text: text, Limit: limit}, nil
}

// ValidateVibeText checks the free-text description bounds.
func ValidateVibeText(text string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < MinVibeLen {
		return fmt.Errorf("%w: description too short", ErrInvalidVibe)
	}
	if n > MaxVibeLen {
		return fmt.Errorf("%w: description longer than %d characters", ErrInvalidVibe, MaxVibeLen)
	}
	return nil
}
