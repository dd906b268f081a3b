package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
)

// newCreateCmd is the one-shot path: one vibe in, one playlist out, no loop.
func newCreateCmd(deps Deps, renderer *Renderer) *cobra.Command {
	var (
		vibe    string
		limit   int
		energy  float64
		valence float64
		market  string
		name    string
		aiName  bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a playlist from a vibe description without the interactive loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := domain.NewVibeRequest(vibe, limit)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("energy") {
				if energy < 0 || energy > 1 {
					return fmt.Errorf("--energy must be in [0,1], got %v", energy)
				}
				req.EnergyOverride = &energy
			}
			if cmd.Flags().Changed("valence") {
				if valence < 0 || valence > 1 {
					return fmt.Errorf("--valence must be in [0,1], got %v", valence)
				}
				req.ValenceOverride = &valence
			}
			req.DryRun = dryRun
			if market == "" {
				market = deps.Cfg.Spotify.Market
			}

			return runCreate(cmd.Context(), deps, renderer, req, market, name, aiName)
		},
	}

	cmd.Flags().StringVar(&vibe, "vibe", "", "vibe description (required)")
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultTrackLimit, "number of tracks (5-50)")
	cmd.Flags().Float64Var(&energy, "energy", 0, "override profile energy (0-1)")
	cmd.Flags().Float64Var(&valence, "valence", 0, "override profile valence (0-1)")
	cmd.Flags().StringVar(&market, "market", "", "two-letter search market (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "custom playlist name")
	cmd.Flags().BoolVar(&aiName, "ai-name", false, "let the model suggest a playlist name")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the tracks without creating a playlist")
	_ = cmd.MarkFlagRequired("vibe")

	return cmd
}

func runCreate(ctx context.Context, deps Deps, renderer *Renderer, req domain.VibeRequest, market, name string, aiName bool) error {
	log := logrus.WithField("component", "create")

	genres, err := deps.Music.AvailableGenres(ctx)
	if err != nil {
		return err
	}

	renderer.Infof("Interpreting vibe...")
	profile, err := deps.Interp.InterpretVibe(ctx, req.Text, genres)
	if err != nil {
		return err
	}
	if req.EnergyOverride != nil {
		profile.Energy = *req.EnergyOverride
	}
	if req.ValenceOverride != nil {
		profile.Valence = *req.ValenceOverride
	}

	tracks, err := deps.Music.SearchTracks(ctx, profile, req.Limit, market)
	if err != nil {
		return err
	}

	renderer.Tracks(tracks)
	if req.DryRun {
		renderer.Infof("Dry run: no playlist created.")
		return nil
	}

	switch {
	case name != "":
		name = domain.SanitizePlaylistName(name)
	case aiName:
		suggested, err := deps.Interp.SuggestPlaylistName(ctx, req.Text)
		if err != nil {
			log.WithError(err).Warn("name suggestion failed, using default")
			name = domain.DefaultPlaylistName(req.Text)
		} else {
			name = suggested
		}
	default:
		name = domain.DefaultPlaylistName(req.Text)
	}

	description := fmt.Sprintf("Generated by vibecraft | %d tracks", len(tracks))
	result, err := deps.Music.CreatePlaylist(ctx, name, description, tracks)
	if err != nil {
		return err
	}

	if deps.History != nil {
		rec := domain.PlaylistRecord{
			ID:         uuid.NewString(),
			PlaylistID: result.ID,
			URL:        result.URL,
			Name:       result.Name,
			Vibe:       req.Text,
			Profile:    profile,
			TrackCount: result.TrackCount,
			CreatedAt:  time.Now().UTC(),
		}
		if err := deps.History.SaveRecord(ctx, rec); err != nil {
			log.WithError(err).Warn("failed to record playlist history")
		}
	}

	renderer.Playlist(&result)
	return nil
}
