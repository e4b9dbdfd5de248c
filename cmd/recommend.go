package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/formatter"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/ranker"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/tasks"
)

// Recommend runs the full pipeline for the mood supplied on the command line.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	mood := strings.TrimSpace(cmd.String("mood"))
	if mood == "" {
		parts := append([]string{cmd.StringArg("mood")}, cmd.Args().Slice()...)
		mood = strings.TrimSpace(strings.Join(parts, " "))
	}

	if mood == "" {
		r.writeWarn("no mood supplied")
		r.writePlain("%s\n", r.palette.Help("Usage: spomood recommend <mood>"))
		return fmt.Errorf("%w: mood text is required", shared.ErrMissingArgument)
	}

	if r.spotify == nil {
		return fmt.Errorf("%w: set SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET, and SPOTIFY_REFRESH_TOKEN (or run `spomood auth login`)", shared.ErrMissingCredentials)
	}

	r.logger.Infof("getting recommendations for mood %q", mood)

	cfg := r.config.Recommend
	weights := ranker.Weights{
		Name:            cfg.NameWeight,
		Description:     cfg.DescriptionWeight,
		FollowerDivisor: cfg.FollowerDivisor,
		FollowerCap:     cfg.FollowerCap,
	}
	if weights.Name == 0 && weights.Description == 0 && weights.FollowerCap == 0 {
		weights = ranker.DefaultWeights()
	}

	engine := tasks.NewEngine(r.spotify, ranker.New(weights), tasks.EngineOpts{
		SearchLimit: int(cmd.Int("limit")),
		TopTracks:   int(cmd.Int("top")),
		DisableRank: cmd.Bool("no-rank"),
	})

	if cmd.Bool("json") || cmd.Bool("markdown") {
		rec, err := engine.Recommend(ctx, mood)
		if err != nil {
			return r.reportError(err)
		}
		if cmd.Bool("markdown") {
			return r.writePlain("%s", formatter.ToMarkdown(rec))
		}
		return r.writeJSON(rec, cmd.Bool("pretty"))
	}

	recommender := tasks.NewRecommender(engine, r.reasoner, r.logger)

	text, err := recommender.Recommend(ctx, mood)
	if err != nil {
		return r.reportError(err)
	}

	r.writePlain("%s\n\n", r.palette.Title(fmt.Sprintf("Recommendations for mood: %q", mood)))
	return r.writePlain("%s", text)
}

// reportError logs a user-facing message for known failure kinds before
// propagating the error for a non-zero exit.
func (r *Runner) reportError(err error) error {
	switch {
	case errors.Is(err, shared.ErrRateLimited):
		r.writeWarn("Spotify is rate limiting requests. %v", err)
	case errors.Is(err, shared.ErrNoPlaylists):
		r.writeWarn("No playlists matched that mood. Try a broader phrase.")
	case errors.Is(err, shared.ErrRefreshFailed), errors.Is(err, shared.ErrMissingCredentials):
		r.writeWarn("Spotify authorization failed. Check your credentials or rerun `spomood auth login`.")
	}
	return err
}
