// Package cli wires the cobra command tree and the terminal presentation.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/soundcheck-labs/vibecraft/internal/adapters/spotify"
	"github.com/soundcheck-labs/vibecraft/internal/config"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

// Deps carries everything the commands need. main builds it once after config
// validation; the commands never construct adapters themselves.
type Deps struct {
	Cfg     *config.Config
	Interp  ports.VibeInterpreter
	Music   *spotify.Client
	History ports.HistoryRepository // nil disables history
}

// ExecuteContext runs the command tree. The bare binary drops into
// interactive mode.
func ExecuteContext(ctx context.Context, deps Deps) error {
	renderer := NewRenderer(os.Stdout)

	root := &cobra.Command{
		Use:   "vibecraft",
		Short: "Turn a vibe description into a Spotify playlist",
		Long: "vibecraft converts a natural-language mood description into a Spotify playlist:\n" +
			"an LLM maps the text to audio-feature targets, Spotify search finds matching\n" +
			"tracks, and a playlist is created on your account.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), deps, renderer)
		},
	}

	root.AddCommand(newCreateCmd(deps, renderer))
	root.AddCommand(newHistoryCmd(deps, renderer))
	root.AddCommand(newAuthCmd(deps, renderer))

	return root.ExecuteContext(ctx)
}
