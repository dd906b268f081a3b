package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

func historyRecord(id string, createdAt time.Time) domain.PlaylistRecord {
	return domain.PlaylistRecord{
		ID:         id,
		PlaylistID: "spotify-" + id,
		URL:        "https://open.spotify.com/playlist/" + id,
		Name:       "Vibe: chill evening coding vibes",
		Vibe:       "chill evening coding vibes",
		Profile: domain.AudioProfile{
			Energy:       0.3,
			Valence:      0.5,
			Danceability: 0.4,
			TempoMin:     80,
			TempoMax:     110,
			Genres:       []string{"chill", "electronic"},
		},
		TrackCount: 20,
		CreatedAt:  createdAt,
	}
}

func TestAdapter_SaveAndRecent(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"r1", "r2", "r3"} {
		rec := historyRecord(id, base.Add(time.Duration(i)*time.Minute))
		if err := a.SaveRecord(context.Background(), rec); err != nil {
			t.Fatalf("save record %s: %v", id, err)
		}
	}

	got, err := a.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("records: got %d, want 2", len(got))
	}
	if got[0].ID != "r3" || got[1].ID != "r2" {
		t.Fatalf("expected newest first, got %s then %s", got[0].ID, got[1].ID)
	}

	rec := got[0]
	if rec.PlaylistID != "spotify-r3" {
		t.Errorf("playlist id: got %q", rec.PlaylistID)
	}
	if rec.Name != "Vibe: chill evening coding vibes" {
		t.Errorf("name: got %q", rec.Name)
	}
	if rec.Vibe != "chill evening coding vibes" {
		t.Errorf("vibe: got %q", rec.Vibe)
	}
	if rec.TrackCount != 20 {
		t.Errorf("track count: got %d", rec.TrackCount)
	}
	if rec.Profile.Energy != 0.3 || rec.Profile.TempoMax != 110 {
		t.Errorf("profile not round-tripped: %+v", rec.Profile)
	}
	if len(rec.Profile.Genres) != 2 || rec.Profile.Genres[0] != "chill" {
		t.Errorf("genres not round-tripped: %v", rec.Profile.Genres)
	}
}

func TestAdapter_RecentEmpty(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	got, err := a.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestAdapter_SaveRecordNoGenres(t *testing.T) {
	a, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	defer a.Close()

	rec := historyRecord("r1", time.Now().UTC())
	rec.Profile.Genres = nil
	if err := a.SaveRecord(context.Background(), rec); err != nil {
		t.Fatalf("save record: %v", err)
	}

	got, err := a.Recent(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("records: got %d, want 1", len(got))
	}
	if got[0].Profile.Genres != nil {
		t.Fatalf("expected nil genres, got %v", got[0].Profile.Genres)
	}
}
