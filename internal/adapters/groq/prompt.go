package groq

import (
	"fmt"
	"sort"
	"strings"
)

const genreSampleSize = 50

const namePrompt = "You are a creative playlist curator. Reply with a single short playlist name (2-5 words) for the vibe the user describes. No quotes, no explanation."

func interpretSystemPrompt(genres []string) string {
	sample := append([]string(nil), genres...)
	sort.Strings(sample)
	if len(sample) > genreSampleSize {
		sample = sample[:genreSampleSize]
	}

	return fmt.Sprintf(`You are an expert DJ and music psychologist.
Map the user's vibe to Spotify search parameters.

Rules:
- Choose 1-2 seed_genres ONLY from this list: %s
- Valence: 0=sad/melancholic, 1=happy/euphoric
- Energy: 0=calm/ambient, 1=intense/aggressive
- Danceability: 0=listening music, 1=club bangers
- Tempo guidance: slow=60-90 BPM, medium=90-120, fast=120-180
- Output JSON with exactly these top-level keys (no nesting):
  {"target_valence": float 0-1, "target_energy": float 0-1, "target_danceability": float 0-1, "min_tempo": int 40-220, "max_tempo": int 40-220, "seed_genres": ["genre1","genre2"], "reasoning": "short sentence"}
- Do not add extra keys. Do not nest fields. Return valid JSON only.`, strings.Join(sample, ", "))
}
