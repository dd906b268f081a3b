package domain

import (
	"fmt"
	"strings"
)

const (
	// TempoFloor and TempoCeil bound the BPM range the LLM may target.
	TempoFloor = 40
	TempoCeil  = 220

	// MaxSeedGenres is the number of genre tags a profile may carry.
	MaxSeedGenres = 2
)

// AudioProfile is the structured search target derived from a vibe request.
// A profile is produced exactly once per request and is replaced, never
// mutated, when a new request is issued.
type AudioProfile struct {
	Energy       float64
	Valence      float64
	Danceability float64
	TempoMin     int
	TempoMax     int
	Genres       []string
	Reasoning    string
}

// Validate checks the profile against the boundary constraints. LLM output
// that fails here must not be installed into a session.
func (p AudioProfile) Validate() error {
	if err := checkUnit("energy", p.Energy); err != nil {
		return err
	}
	if err := checkUnit("valence", p.Valence); err != nil {
		return err
	}
	if err := checkUnit("danceability", p.Danceability); err != nil {
		return err
	}
	if p.TempoMin < TempoFloor || p.TempoMin > TempoCeil {
		return fmt.Errorf("%w: min tempo %d outside [%d,%d]", ErrInvalidProfile, p.TempoMin, TempoFloor, TempoCeil)
	}
	if p.TempoMax < TempoFloor || p.TempoMax > TempoCeil {
		return fmt.Errorf("%w: max tempo %d outside [%d,%d]", ErrInvalidProfile, p.TempoMax, TempoFloor, TempoCeil)
	}
	if p.TempoMin > p.TempoMax {
		return fmt.Errorf("%w: tempo range %d-%d inverted", ErrInvalidProfile, p.TempoMin, p.TempoMax)
	}
	if len(p.Genres) == 0 {
		return fmt.Errorf("%w: no seed genres", ErrInvalidProfile)
	}
	if len(p.Genres) > MaxSeedGenres {
		return fmt.Errorf("%w: %d seed genres, want at most %d", ErrInvalidProfile, len(p.Genres), MaxSeedGenres)
	}
	return nil
}

func checkUnit(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %.3f outside [0,1]", ErrInvalidProfile, field, v)
	}
	return nil
}

// NormalizeGenres lowercases, trims and dedupes genre tags while preserving
// their order. Empty tags are dropped.
func NormalizeGenres(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
