package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/cratedig/internal/recommend"
	"github.com/desertthunder/cratedig/internal/shared"
	"github.com/desertthunder/cratedig/internal/ui"
	"github.com/urfave/cli/v3"
)

// RecommendFunnel runs the two-phase hit-count funnel strategy.
func (r *Runner) RecommendFunnel(ctx context.Context, cmd *cli.Command) error {
	opts := recommend.Options{
		Strategy:              recommend.StrategyFunnel,
		Name:                  cmd.String("name"),
		Count:                 int(cmd.Int("count")),
		FetchLimit:            int(cmd.Int("fetch-limit")),
		SearchResultsPerTrack: int(cmd.Int("search-results-per-track")),
	}
	return r.runRecommend(ctx, cmd, opts)
}

// RecommendSample runs the randomized sampling strategy.
func (r *Runner) RecommendSample(ctx context.Context, cmd *cli.Command) error {
	opts := recommend.Options{
		Strategy:    recommend.StrategySample,
		Name:        cmd.String("name"),
		Count:       int(cmd.Int("count")),
		SearchLimit: int(cmd.Int("search-limit")),
	}
	return r.runRecommend(ctx, cmd, opts)
}

// runRecommend drives a recommendation run for either strategy: validates
// the service is ready, streams engine progress to the terminal, and prints
// the ranked result with the created playlist's shareable URL last.
func (r *Runner) runRecommend(ctx context.Context, cmd *cli.Command, opts recommend.Options) error {
	playlistRef := cmd.StringArg("playlist")
	if playlistRef == "" {
		return fmt.Errorf("%w: playlist URL, URI, or ID is required", shared.ErrMissingArgument)
	}

	if r.spotify == nil {
		return fmt.Errorf("%w: Spotify credentials are not configured", shared.ErrMissingCredentials)
	}

	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Info("starting recommendation run", "strategy", opts.Strategy.String(), "playlist", playlistRef)

	progressCh := make(chan recommend.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case recommend.FetchInput:
				r.writePlain("📥 %s\n", update.Message)
			case recommend.Discover:
				if update.Step == 1 && update.Total == 1 {
					r.writePlain("\n🔍 %s\n", update.Message)
				} else {
					r.writePlain("   %s\n", update.Message)
				}
			case recommend.Evaluate:
				r.writePlain("   %s\n", update.Message)
			case recommend.Rank:
				r.writePlain("\n📊 %s\n", update.Message)
			case recommend.CreateOutput:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, progressCh, playlistRef, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(result, pretty)
	}

	r.writePlain("\n")
	r.writePlainHeader(fmt.Sprintf("Top %d recommendations", len(result.Recommendations)))
	for rank, rec := range result.Recommendations {
		r.writePlain("%3d. %s - %s %s\n",
			rank+1,
			rec.Track.Name,
			rec.Track.PrimaryArtist(),
			ui.Dim(fmt.Sprintf("(score: %.0f)", rec.Score)),
		)
	}

	r.writePlain("\n%s %s\n", ui.OK("Done! Playlist created:"), result.Created.URL)
	return nil
}
