package cli

import "github.com/charmbracelet/lipgloss"

// Styles groups every lipgloss style the renderer uses.
type Styles struct {
	Banner     lipgloss.Style
	Tagline    lipgloss.Style
	Prompt     lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	TrackNum   lipgloss.Style
	TrackName  lipgloss.Style
	Artist     lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	URL        lipgloss.Style
	Subtle     lipgloss.Style
}

// NewStyles builds the default palette, Spotify green front and center.
func NewStyles() Styles {
	green := lipgloss.Color("#1DB954")
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(green).
			Bold(true).
			Padding(0, 1),

		Tagline: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(green).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),

		TrackNum: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Width(4).
			Align(lipgloss.Right),

		TrackName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")),

		Artist: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(green).
			Bold(true),

		URL: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4BA3FF")).
			Underline(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),
	}
}
