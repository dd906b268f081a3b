package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

// Controller drives the interactive loop. It is single-threaded: each turn
// blocks on the adapter calls it issues and resumes on response or error.
type Controller struct {
	interp  ports.VibeInterpreter
	music   ports.MusicProvider
	history ports.HistoryRepository // optional; nil disables recording
	log     *logrus.Entry

	state State
	sess  *Session
}

// NewController wires the controller with its adapters and session defaults.
func NewController(interp ports.VibeInterpreter, music ports.MusicProvider, history ports.HistoryRepository, defaults Settings) *Controller {
	return &Controller{
		interp:  interp,
		music:   music,
		history: history,
		log:     logrus.WithField("component", "session"),
		state:   StateAwaitingVibe,
		sess:    NewSession(defaults),
	}
}

// State returns the controller's current position.
func (c *Controller) State() State { return c.state }

// Session exposes the current session for rendering.
func (c *Controller) Session() *Session { return c.sess }

// HandleInput processes one turn. Unrecognized input and recoverable adapter
// failures are reported in the Reply; the controller never returns an error
// to the loop, because nothing past startup is fatal.
func (c *Controller) HandleInput(ctx context.Context, input string) Reply {
	parsed := Parse(input)

	switch parsed.Command {
	case CmdExit:
		c.state = StateExited
		return Reply{Kind: ReplyExit, Text: "Thanks for vibing. See you next time."}
	case CmdHelp:
		return Reply{Kind: ReplyHelp}
	case CmdPreview:
		return c.handlePreview(ctx)
	case CmdCreate:
		return c.handleCreate(ctx)
	case CmdSettings:
		settings := c.sess.Settings
		return Reply{Kind: ReplySettings, Settings: &settings}
	case CmdSetLimit, CmdSetMarket, CmdSetName:
		return c.handleAdjust(parsed)
	case CmdNewVibe:
		c.sess.clearPair()
		c.state = StateAwaitingVibe
		return Reply{Kind: ReplyCleared, Text: "Ready for a new vibe. What are you feeling?"}
	case CmdVibe:
		return c.handleVibe(ctx, parsed.Vibe)
	}

	return errorReply("I didn't quite catch that. Describe your vibe or type 'help'.")
}

// handleVibe runs the full request pipeline: genres, LLM interpretation,
// track search. The previous pair is invalidated before any external call so
// a later create can never reference superseded results. Any failure leaves
// the controller in AwaitingVibe with no partial profile installed.
func (c *Controller) handleVibe(ctx context.Context, vibe string) Reply {
	if err := domain.ValidateVibeText(vibe); err != nil {
		return errorReply(fmt.Sprintf("Invalid vibe: %v", err))
	}

	c.sess.clearPair()
	c.state = StateAwaitingVibe

	genres, err := c.music.AvailableGenres(ctx)
	if err != nil {
		c.log.WithError(err).Warn("genre fetch failed")
		return errorReply(fmt.Sprintf("Spotify error: %v. Try again in a moment.", err))
	}

	profile, err := c.interp.InterpretVibe(ctx, vibe, genres)
	if err != nil {
		c.log.WithError(err).Warn("vibe interpretation failed")
		if errors.Is(err, domain.ErrInvalidProfile) {
			return errorReply("The model returned an unusable profile. Try rephrasing your vibe.")
		}
		return errorReply(fmt.Sprintf("Interpretation failed: %v", err))
	}

	tracks, err := c.music.SearchTracks(ctx, profile, c.sess.Settings.Limit, c.sess.Settings.Market)
	if err != nil {
		c.log.WithError(err).Warn("track search failed")
		return errorReply(fmt.Sprintf("Track search failed: %v", err))
	}

	c.sess.install(vibe, profile, tracks)
	c.state = StateProfileReady
	return Reply{
		Kind:    ReplyProfile,
		Text:    fmt.Sprintf("Found %d tracks.", len(tracks)),
		Profile: c.sess.Profile,
		Tracks:  tracks,
	}
}

// handlePreview re-renders the current tracks. It issues no network calls
// unless a settings change marked the list stale.
func (c *Controller) handlePreview(ctx context.Context) Reply {
	if !c.state.Ready() || c.sess.Profile == nil {
		return errorReply("No tracks yet. Describe a vibe first.")
	}
	if c.sess.stale {
		if reply, ok := c.refreshTracks(ctx); !ok {
			return reply
		}
	}
	c.state = StatePreviewShown
	return Reply{Kind: ReplyTracks, Tracks: c.sess.Tracks}
}

// handleCreate materializes the playlist from the current pair. Failure keeps
// ProfileReady so a retry needs no new LLM call.
func (c *Controller) handleCreate(ctx context.Context) Reply {
	if !c.state.Ready() || c.sess.Profile == nil {
		return errorReply("No tracks yet. Describe a vibe first.")
	}
	if c.sess.stale {
		if reply, ok := c.refreshTracks(ctx); !ok {
			return reply
		}
	}

	name := c.sess.PlaylistName()
	description := fmt.Sprintf("Generated by vibecraft | %d tracks", len(c.sess.Tracks))
	result, err := c.music.CreatePlaylist(ctx, name, description, c.sess.Tracks)
	if err != nil {
		c.log.WithError(err).Warn("playlist creation failed")
		c.state = StateProfileReady
		return errorReply(fmt.Sprintf("Playlist creation failed: %v. Your tracks are still here, try 'create' again.", err))
	}

	c.record(ctx, result)
	c.state = StatePlaylistCreated
	return Reply{
		Kind:     ReplyPlaylist,
		Text:     "Playlist created!",
		Playlist: &result,
	}
}

// handleAdjust applies a settings change. The vibe request survives, but the
// track list is marked stale so the next preview or create re-runs the search.
func (c *Controller) handleAdjust(parsed ParsedInput) Reply {
	var confirm string
	switch parsed.Command {
	case CmdSetLimit:
		if parsed.Limit < domain.MinTrackLimit || parsed.Limit > domain.MaxTrackLimit {
			return errorReply(fmt.Sprintf("Track count must be %d-%d.", domain.MinTrackLimit, domain.MaxTrackLimit))
		}
		c.sess.Settings.Limit = parsed.Limit
		confirm = fmt.Sprintf("Track count set to %d.", parsed.Limit)
	case CmdSetMarket:
		c.sess.Settings.Market = parsed.Market
		confirm = fmt.Sprintf("Market set to %s.", parsed.Market)
	case CmdSetName:
		c.sess.Settings.Name = domain.SanitizePlaylistName(parsed.Name)
		confirm = fmt.Sprintf("Playlist name set to %q.", c.sess.Settings.Name)
	}

	if c.sess.Profile != nil {
		c.sess.stale = true
		c.state = StateSettingsAdjusted
		confirm += " The track list will refresh on the next preview or create."
	}

	settings := c.sess.Settings
	return Reply{Kind: ReplySettings, Text: confirm, Settings: &settings}
}

// refreshTracks re-runs the search for the current profile with the current
// settings. On failure the stale flag and state are left untouched.
func (c *Controller) refreshTracks(ctx context.Context) (Reply, bool) {
	tracks, err := c.music.SearchTracks(ctx, *c.sess.Profile, c.sess.Settings.Limit, c.sess.Settings.Market)
	if err != nil {
		c.log.WithError(err).Warn("track refresh failed")
		return errorReply(fmt.Sprintf("Track search failed: %v", err)), false
	}
	c.sess.Tracks = tracks
	c.sess.stale = false
	return Reply{}, true
}

// record logs the created playlist to local history. Failures are logged and
// never affect the controller.
func (c *Controller) record(ctx context.Context, result domain.PlaylistResult) {
	if c.history == nil {
		return
	}
	rec := domain.PlaylistRecord{
		ID:         uuid.NewString(),
		PlaylistID: result.ID,
		URL:        result.URL,
		Name:       result.Name,
		Vibe:       c.sess.Vibe,
		Profile:    *c.sess.Profile,
		TrackCount: result.TrackCount,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.history.SaveRecord(ctx, rec); err != nil {
		c.log.WithError(err).Warn("failed to record playlist history")
	}
}
