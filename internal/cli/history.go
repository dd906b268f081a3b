package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCmd(deps Deps, renderer *Renderer) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently created playlists",
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.History == nil {
				renderer.Infof("History is disabled (no database available).")
				return nil
			}

			records, err := deps.History.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				renderer.Infof("No playlists created yet.")
				return nil
			}

			for _, rec := range records {
				header := fmt.Sprintf("%s  %s (%d tracks)",
					rec.CreatedAt.Local().Format("2006-01-02 15:04"), rec.Name, rec.TrackCount)
				renderer.Successf("%s", header)
				renderer.Infof("  vibe: %s", rec.Vibe)
				if len(rec.Profile.Genres) > 0 {
					renderer.Infof("  genres: %s", strings.Join(rec.Profile.Genres, ", "))
				}
				if rec.URL != "" {
					renderer.Infof("  %s", rec.URL)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of records to show")
	return cmd
}
