package domain

import (
	"encoding/json"
	"fmt"
)

// wireProfile mirrors the flat JSON schema LLM providers are instructed to
// emit. Both adapters share it so the prompt contract lives in one place.
type wireProfile struct {
	TargetEnergy       float64  `json:"target_energy"`
	TargetValence      float64  `json:"target_valence"`
	TargetDanceability float64  `json:"target_danceability"`
	MinTempo           int      `json:"min_tempo"`
	MaxTempo           int      `json:"max_tempo"`
	SeedGenres         []string `json:"seed_genres"`
	Reasoning          string   `json:"reasoning"`
}

// ParseAudioProfile decodes and validates LLM output. Output that does not
// match the expected schema fails with a validation error instead of being
// trusted.
func ParseAudioProfile(data []byte) (AudioProfile, error) {
	var wire wireProfile
	if err := json.Unmarshal(data, &wire); err != nil {
		return AudioProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	profile := AudioProfile{
		Energy:       wire.TargetEnergy,
		Valence:      wire.TargetValence,
		Danceability: wire.TargetDanceability,
		TempoMin:     wire.MinTempo,
		TempoMax:     wire.MaxTempo,
		Genres:       NormalizeGenres(wire.SeedGenres),
		Reasoning:    wire.Reasoning,
	}
	if err := profile.Validate(); err != nil {
		return AudioProfile{}, err
	}
	return profile, nil
}
