package cli

import (
	"github.com/spf13/cobra"
)

func newAuthCmd(deps Deps, renderer *Renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Run the Spotify user authorization flow",
		Long: "Runs the browser-based Spotify authorization and caches the token locally.\n" +
			"Playlist creation triggers this automatically when needed; run it ahead of\n" +
			"time to get the browser round trip out of the way.",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := deps.Music.Authenticator()

			if auth.Authorized() {
				renderer.Infof("A cached token already exists (%s). Re-authorizing...", deps.Cfg.Spotify.TokenCache)
			}

			if _, err := auth.Authorize(cmd.Context()); err != nil {
				return err
			}

			renderer.Successf("Authorization complete. Token cached at %s.", deps.Cfg.Spotify.TokenCache)
			return nil
		},
	}
}
