package domain

import (
	"strings"
	"testing"
)

func TestSanitizePlaylistName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name untouched", "Midnight Focus", "Midnight Focus"},
		{"strips special characters", "lo-fi @ night! (v2)", "lo-fi night v2"},
		{"keeps colon and dash", "Vibe: late-night drive", "Vibe: late-night drive"},
		{"collapses whitespace", "too   many    spaces", "too many spaces"},
		{"empty falls back", "!!!", "Vibecraft Playlist"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizePlaylistName(tc.input); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	long := strings.Repeat("x", 150)
	if got := SanitizePlaylistName(long); len(got) != 100 {
		t.Fatalf("expected 100-char cap, got %d", len(got))
	}
}

func TestDefaultPlaylistName(t *testing.T) {
	if got := DefaultPlaylistName("chill evening coding vibes"); got != "Vibe: chill evening coding vibes" {
		t.Fatalf("got %q", got)
	}

	long := strings.Repeat("groovy ", 20)
	got := DefaultPlaylistName(long)
	if !strings.HasPrefix(got, "Vibe: ") {
		t.Fatalf("expected prefix, got %q", got)
	}
	if len(got) > len("Vibe: ")+40 {
		t.Fatalf("expected vibe truncated to 40 runes, got %q", got)
	}
}
