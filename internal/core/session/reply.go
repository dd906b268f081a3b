package session

import "github.com/soundcheck-labs/vibecraft/internal/core/domain"

// ReplyKind tells the presentation layer what to render. The controller never
// prints; it returns data and the CLI decides how it looks.
type ReplyKind int

const (
	ReplyError ReplyKind = iota
	ReplyHelp
	ReplyExit
	ReplyProfile  // new profile + tracks installed
	ReplyTracks   // preview of the current track list
	ReplyPlaylist // playlist created
	ReplySettings // settings shown or adjusted
	ReplyCleared  // pair discarded, ready for a new vibe
)

// Reply is the outcome of one turn.
type Reply struct {
	Kind     ReplyKind
	Text     string
	Profile  *domain.AudioProfile
	Tracks   []domain.Track
	Playlist *domain.PlaylistResult
	Settings *Settings
}

func errorReply(text string) Reply {
	return Reply{Kind: ReplyError, Text: text}
}
