package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
	"github.com/soundcheck-labs/vibecraft/internal/core/session"
)

// Renderer turns controller replies into styled terminal output.
type Renderer struct {
	out    io.Writer
	styles Styles
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, styles: NewStyles()}
}

func (r *Renderer) Banner() {
	banner := r.styles.Banner.Render("vibecraft") + "\n" +
		r.styles.Tagline.Render("describe a vibe, get a playlist")
	fmt.Fprintln(r.out, r.styles.Panel.Render(banner))
	fmt.Fprintln(r.out, r.styles.Subtle.Render("Describe your vibe, or type 'help' for commands."))
	fmt.Fprintln(r.out)
}

func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, r.styles.Prompt.Render("vibe> "))
}

// Reply dispatches on the reply kind. The controller decides what happened;
// this decides how it looks.
func (r *Renderer) Reply(reply session.Reply) {
	switch reply.Kind {
	case session.ReplyError:
		fmt.Fprintln(r.out, r.styles.Error.Render(reply.Text))
	case session.ReplyHelp:
		r.help()
	case session.ReplyExit:
		fmt.Fprintln(r.out, r.styles.Subtle.Render(reply.Text))
	case session.ReplyProfile:
		r.profile(reply.Profile)
		r.Tracks(reply.Tracks)
		r.menu()
	case session.ReplyTracks:
		r.Tracks(reply.Tracks)
		r.menu()
	case session.ReplyPlaylist:
		r.Playlist(reply.Playlist)
	case session.ReplySettings:
		if reply.Text != "" {
			fmt.Fprintln(r.out, r.styles.Success.Render(reply.Text))
		}
		r.settings(reply.Settings)
	case session.ReplyCleared:
		fmt.Fprintln(r.out, r.styles.Subtle.Render(reply.Text))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) profile(p *domain.AudioProfile) {
	if p == nil {
		return
	}
	var b strings.Builder
	b.WriteString(r.styles.PanelTitle.Render("Audio profile") + "\n")
	b.WriteString(r.kv("energy", fmt.Sprintf("%.2f", p.Energy)))
	b.WriteString(r.kv("valence", fmt.Sprintf("%.2f", p.Valence)))
	b.WriteString(r.kv("danceability", fmt.Sprintf("%.2f", p.Danceability)))
	b.WriteString(r.kv("tempo", fmt.Sprintf("%d-%d bpm", p.TempoMin, p.TempoMax)))
	b.WriteString(r.kv("genres", strings.Join(p.Genres, ", ")))
	if p.Reasoning != "" {
		b.WriteString(r.kv("reasoning", p.Reasoning))
	}
	fmt.Fprintln(r.out, r.styles.Panel.Render(strings.TrimRight(b.String(), "\n")))
}

func (r *Renderer) kv(label, value string) string {
	return r.styles.Label.Render(fmt.Sprintf("%-13s", label)) + r.styles.Value.Render(value) + "\n"
}

// Tracks renders the numbered track list.
func (r *Renderer) Tracks(tracks []domain.Track) {
	if len(tracks) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(r.styles.PanelTitle.Render(fmt.Sprintf("Tracks (%d)", len(tracks))) + "\n")
	for i, t := range tracks {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			r.styles.TrackNum.Render(fmt.Sprintf("%d.", i+1)),
			" ",
			r.styles.TrackName.Render(t.Title),
			r.styles.Artist.Render(" — "+t.Artist),
		)
		b.WriteString(line + "\n")
	}
	fmt.Fprintln(r.out, strings.TrimRight(b.String(), "\n"))
}

// Playlist renders the creation result with the URL front and center.
func (r *Renderer) Playlist(p *domain.PlaylistResult) {
	if p == nil {
		return
	}
	body := r.styles.Success.Render("Playlist created!") + "\n" +
		r.kv("name", p.Name) +
		r.kv("tracks", fmt.Sprintf("%d", p.TrackCount)) +
		r.styles.Label.Render(fmt.Sprintf("%-13s", "url")) + r.styles.URL.Render(p.URL)
	fmt.Fprintln(r.out, r.styles.Panel.Render(body))
}

func (r *Renderer) settings(s *session.Settings) {
	if s == nil {
		return
	}
	name := s.Name
	if name == "" {
		name = "(derived from vibe)"
	}
	var b strings.Builder
	b.WriteString(r.styles.PanelTitle.Render("Settings") + "\n")
	b.WriteString(r.kv("limit", fmt.Sprintf("%d", s.Limit)))
	b.WriteString(r.kv("market", s.Market))
	b.WriteString(r.kv("name", name))
	b.WriteString(r.styles.Help.Render("Adjust with: limit <n>, market <cc>, name <text>"))
	fmt.Fprintln(r.out, r.styles.Panel.Render(strings.TrimRight(b.String(), "\n")))
}

func (r *Renderer) menu() {
	fmt.Fprintln(r.out, r.styles.Help.Render("[1] preview  [2] create  [3] settings  [4] new vibe  [5] help  [6] exit"))
}

func (r *Renderer) help() {
	lines := []string{
		r.styles.PanelTitle.Render("Commands"),
		"  <any description>   interpret a new vibe (e.g. \"chill evening coding vibes\")",
		"  1 / preview         show the current track list",
		"  2 / create          create the playlist on Spotify",
		"  3 / settings        show current settings",
		"  limit <n>           set the track count (5-50)",
		"  market <cc>         set the search market (two-letter country code)",
		"  name <text>         set a custom playlist name",
		"  4 / new             discard the current vibe and start over",
		"  6 / exit            leave",
	}
	fmt.Fprintln(r.out, r.styles.Panel.Render(strings.Join(lines, "\n")))
}

// Errorf prints a one-off error outside the reply flow.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a one-off confirmation outside the reply flow.
func (r *Renderer) Successf(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Infof prints subtle informational output.
func (r *Renderer) Infof(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.Subtle.Render(fmt.Sprintf(format, args...)))
}
