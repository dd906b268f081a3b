package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// --- Fakes ---

type fakeInterpreter struct {
	profile    domain.AudioProfile
	err        error
	calls      int
	gotVibe    string
	gotGenres  []string
	nameResult string
}

func (f *fakeInterpreter) InterpretVibe(_ context.Context, vibe string, genres []string) (domain.AudioProfile, error) {
	f.calls++
	f.gotVibe = vibe
	f.gotGenres = genres
	if f.err != nil {
		return domain.AudioProfile{}, f.err
	}
	return f.profile, nil
}

func (f *fakeInterpreter) SuggestPlaylistName(_ context.Context, _ string) (string, error) {
	return f.nameResult, nil
}

type fakeMusic struct {
	genres      []string
	tracks      []domain.Track
	searchErr   error
	createErr   error
	result      domain.PlaylistResult
	searchCalls int
	createCalls int
	gotLimit    int
	gotMarket   string
	gotName     string
}

func (f *fakeMusic) AvailableGenres(_ context.Context) ([]string, error) {
	if f.genres == nil {
		return []string{"electronic", "lo-fi", "jazz"}, nil
	}
	return f.genres, nil
}

func (f *fakeMusic) SearchTracks(_ context.Context, _ domain.AudioProfile, limit int, market string) ([]domain.Track, error) {
	f.searchCalls++
	f.gotLimit = limit
	f.gotMarket = market
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.tracks != nil {
		return f.tracks, nil
	}
	tracks := make([]domain.Track, limit)
	for i := range tracks {
		tracks[i] = domain.Track{
			ID:     fmt.Sprintf("t%d", i),
			Title:  fmt.Sprintf("Track %d", i),
			Artist: "Artist",
			URI:    fmt.Sprintf("spotify:track:t%d", i),
		}
	}
	return tracks, nil
}

func (f *fakeMusic) CreatePlaylist(_ context.Context, name, _ string, tracks []domain.Track) (domain.PlaylistResult, error) {
	f.createCalls++
	f.gotName = name
	if f.createErr != nil {
		return domain.PlaylistResult{}, f.createErr
	}
	result := f.result
	if result.ID == "" {
		result = domain.PlaylistResult{ID: "pl-1", URL: "https://open.spotify.com/playlist/pl-1", Name: name, TrackCount: len(tracks)}
	}
	return result, nil
}

type fakeHistory struct {
	records []domain.PlaylistRecord
	err     error
}

func (f *fakeHistory) SaveRecord(_ context.Context, rec domain.PlaylistRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) Recent(_ context.Context, _ int) ([]domain.PlaylistRecord, error) {
	return f.records, f.err
}

func validProfile() domain.AudioProfile {
	return domain.AudioProfile{
		Energy:       0.40,
		Valence:      0.50,
		Danceability: 0.60,
		TempoMin:     90,
		TempoMax:     120,
		Genres:       []string{"electronic", "lo-fi"},
		Reasoning:    "mellow but steady",
	}
}

func newTestController(interp *fakeInterpreter, music *fakeMusic, history *fakeHistory) *Controller {
	if history == nil {
		return NewController(interp, music, nil, Settings{Limit: 20, Market: "US"})
	}
	return NewController(interp, music, history, Settings{Limit: 20, Market: "US"})
}

// --- Tests ---

func TestController_VibeRequestInstallsProfile(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	reply := c.HandleInput(context.Background(), "chill evening coding vibes")

	if reply.Kind != ReplyProfile {
		t.Fatalf("expected ReplyProfile, got %v (%s)", reply.Kind, reply.Text)
	}
	if c.State() != StateProfileReady {
		t.Fatalf("expected ProfileReady, got %s", c.State())
	}
	if c.Session().Profile == nil {
		t.Fatal("expected profile installed")
	}
	if got := len(c.Session().Tracks); got != 20 {
		t.Fatalf("expected 20 tracks, got %d", got)
	}
	if interp.gotVibe != "chill evening coding vibes" {
		t.Fatalf("interpreter got vibe %q", interp.gotVibe)
	}
	if music.gotLimit != 20 || music.gotMarket != "US" {
		t.Fatalf("search called with limit=%d market=%q", music.gotLimit, music.gotMarket)
	}
}

func TestController_LLMFailureLeavesSessionUnchanged(t *testing.T) {
	interp := &fakeInterpreter{err: errors.New("timeout")}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	reply := c.HandleInput(context.Background(), "chill evening coding vibes")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("expected AwaitingVibe, got %s", c.State())
	}
	if c.Session().Profile != nil || len(c.Session().Tracks) != 0 {
		t.Fatal("expected no partial profile installed")
	}
	if music.searchCalls != 0 {
		t.Fatalf("search should not run after LLM failure, got %d calls", music.searchCalls)
	}
}

func TestController_InvalidProfileIsValidationError(t *testing.T) {
	interp := &fakeInterpreter{err: fmt.Errorf("ollama: %w: energy 1.500 outside [0,1]", domain.ErrInvalidProfile)}
	c := newTestController(interp, &fakeMusic{}, nil)

	reply := c.HandleInput(context.Background(), "something upbeat and loud please")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("expected AwaitingVibe, got %s", c.State())
	}
}

func TestController_SearchFailureUninstallsProfile(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{searchErr: domain.ErrNoTracks}
	c := newTestController(interp, music, nil)

	reply := c.HandleInput(context.Background(), "chill evening coding vibes")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("expected AwaitingVibe, got %s", c.State())
	}
	if c.Session().Profile != nil {
		t.Fatal("profile without results must not be installed")
	}
}

func TestController_NewVibeReplacesPair(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	first := c.Session().Profile

	second := validProfile()
	second.Energy = 0.9
	second.Genres = []string{"metal"}
	interp.profile = second

	reply := c.HandleInput(context.Background(), "aggressive workout session now")
	if reply.Kind != ReplyProfile {
		t.Fatalf("expected ReplyProfile, got %v (%s)", reply.Kind, reply.Text)
	}
	if c.Session().Profile == first {
		t.Fatal("expected previous profile replaced, not reused")
	}
	if c.Session().Profile.Energy != 0.9 {
		t.Fatalf("expected replacement profile, got energy %.2f", c.Session().Profile.Energy)
	}
	if c.Session().Vibe != "aggressive workout session now" {
		t.Fatalf("expected vibe replaced, got %q", c.Session().Vibe)
	}
}

func TestController_PreviewIssuesNoCalls(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	searchesAfterVibe := music.searchCalls

	reply := c.HandleInput(context.Background(), "preview")

	if reply.Kind != ReplyTracks {
		t.Fatalf("expected ReplyTracks, got %v", reply.Kind)
	}
	if c.State() != StatePreviewShown {
		t.Fatalf("expected PreviewShown, got %s", c.State())
	}
	if music.searchCalls != searchesAfterVibe {
		t.Fatal("preview must not issue new search calls")
	}
	if interp.calls != 1 {
		t.Fatal("preview must not invoke the interpreter")
	}
}

func TestController_PreviewWithoutProfile(t *testing.T) {
	c := newTestController(&fakeInterpreter{}, &fakeMusic{}, nil)

	reply := c.HandleInput(context.Background(), "preview")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("state should not change, got %s", c.State())
	}
}

func TestController_CreateFailureRetainsProfileReady(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{createErr: errors.New("status 502")}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")

	reply := c.HandleInput(context.Background(), "create")
	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateProfileReady {
		t.Fatalf("expected ProfileReady after create failure, got %s", c.State())
	}

	// Retry succeeds without re-invoking the LLM.
	music.createErr = nil
	reply = c.HandleInput(context.Background(), "create")
	if reply.Kind != ReplyPlaylist {
		t.Fatalf("expected ReplyPlaylist, got %v (%s)", reply.Kind, reply.Text)
	}
	if c.State() != StatePlaylistCreated {
		t.Fatalf("expected PlaylistCreated, got %s", c.State())
	}
	if interp.calls != 1 {
		t.Fatalf("retry must not re-invoke the interpreter, got %d calls", interp.calls)
	}
}

func TestController_CreateUsesDerivedName(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	history := &fakeHistory{}
	c := newTestController(interp, music, history)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	reply := c.HandleInput(context.Background(), "create")

	if reply.Kind != ReplyPlaylist {
		t.Fatalf("expected ReplyPlaylist, got %v (%s)", reply.Kind, reply.Text)
	}
	if music.gotName != "Vibe: chill evening coding vibes" {
		t.Fatalf("expected derived name, got %q", music.gotName)
	}
	if reply.Playlist == nil || reply.Playlist.TrackCount != 20 {
		t.Fatalf("expected playlist with 20 tracks, got %+v", reply.Playlist)
	}
	if len(history.records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history.records))
	}
	if history.records[0].Vibe != "chill evening coding vibes" {
		t.Fatalf("history record vibe mismatch: %q", history.records[0].Vibe)
	}
}

func TestController_HistoryFailureDoesNotAffectState(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	history := &fakeHistory{err: errors.New("disk full")}
	c := newTestController(interp, &fakeMusic{}, history)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	reply := c.HandleInput(context.Background(), "create")

	if reply.Kind != ReplyPlaylist {
		t.Fatalf("expected ReplyPlaylist despite history failure, got %v", reply.Kind)
	}
	if c.State() != StatePlaylistCreated {
		t.Fatalf("expected PlaylistCreated, got %s", c.State())
	}
}

func TestController_SettingsChangeMarksTracksStale(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	searches := music.searchCalls

	reply := c.HandleInput(context.Background(), "limit 30")
	if reply.Kind != ReplySettings {
		t.Fatalf("expected ReplySettings, got %v", reply.Kind)
	}
	if c.State() != StateSettingsAdjusted {
		t.Fatalf("expected SettingsAdjusted, got %s", c.State())
	}
	if c.Session().Vibe != "chill evening coding vibes" {
		t.Fatal("settings change must not discard the vibe request")
	}
	if music.searchCalls != searches {
		t.Fatal("settings change alone must not trigger a search")
	}

	// Next preview re-runs the search with the updated limit.
	reply = c.HandleInput(context.Background(), "preview")
	if reply.Kind != ReplyTracks {
		t.Fatalf("expected ReplyTracks, got %v (%s)", reply.Kind, reply.Text)
	}
	if music.searchCalls != searches+1 {
		t.Fatalf("expected one refresh search, got %d extra", music.searchCalls-searches)
	}
	if music.gotLimit != 30 {
		t.Fatalf("refresh used limit %d, want 30", music.gotLimit)
	}
	if interp.calls != 1 {
		t.Fatal("refresh must not re-invoke the interpreter")
	}

	// The list is fresh now; another preview is local again.
	c.HandleInput(context.Background(), "preview")
	if music.searchCalls != searches+1 {
		t.Fatal("second preview must not search again")
	}
}

func TestController_StaleRefreshFailureKeepsState(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	c.HandleInput(context.Background(), "limit 30")

	music.searchErr = errors.New("status 503")
	reply := c.HandleInput(context.Background(), "create")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if !c.State().Ready() {
		t.Fatalf("expected a ready state after refresh failure, got %s", c.State())
	}

	// Once the provider recovers, create goes through with fresh tracks.
	music.searchErr = nil
	reply = c.HandleInput(context.Background(), "create")
	if reply.Kind != ReplyPlaylist {
		t.Fatalf("expected ReplyPlaylist, got %v (%s)", reply.Kind, reply.Text)
	}
}

func TestController_CustomNameUsedOnCreate(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	music := &fakeMusic{}
	c := newTestController(interp, music, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	c.HandleInput(context.Background(), "name Midnight Focus")
	c.HandleInput(context.Background(), "create")

	if music.gotName != "Midnight Focus" {
		t.Fatalf("expected custom name, got %q", music.gotName)
	}
}

func TestController_NewVibeCommandClearsPair(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	c := newTestController(interp, &fakeMusic{}, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	reply := c.HandleInput(context.Background(), "new")

	if reply.Kind != ReplyCleared {
		t.Fatalf("expected ReplyCleared, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("expected AwaitingVibe, got %s", c.State())
	}
	if c.Session().Profile != nil || c.Session().Vibe != "" {
		t.Fatal("expected pair cleared")
	}
}

func TestController_UnknownInputKeepsState(t *testing.T) {
	interp := &fakeInterpreter{profile: validProfile()}
	c := newTestController(interp, &fakeMusic{}, nil)

	c.HandleInput(context.Background(), "chill evening coding vibes")
	reply := c.HandleInput(context.Background(), "xyz")

	if reply.Kind != ReplyError {
		t.Fatalf("expected error reply, got %v", reply.Kind)
	}
	if c.State() != StateProfileReady {
		t.Fatalf("unrecognized input must not change state, got %s", c.State())
	}
	if interp.calls != 1 {
		t.Fatal("unrecognized input must not reach the interpreter")
	}
}

func TestController_HelpAndExit(t *testing.T) {
	c := newTestController(&fakeInterpreter{}, &fakeMusic{}, nil)

	if reply := c.HandleInput(context.Background(), "help"); reply.Kind != ReplyHelp {
		t.Fatalf("expected ReplyHelp, got %v", reply.Kind)
	}
	if c.State() != StateAwaitingVibe {
		t.Fatalf("help must not change state, got %s", c.State())
	}

	if reply := c.HandleInput(context.Background(), "exit"); reply.Kind != ReplyExit {
		t.Fatalf("expected ReplyExit, got %v", reply.Kind)
	}
	if c.State() != StateExited {
		t.Fatalf("expected Exited, got %s", c.State())
	}
}
