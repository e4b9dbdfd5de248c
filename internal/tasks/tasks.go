package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/ranker"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/services"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

// Engine sequences the recommendation pipeline: playlist search, heuristic
// ranking, track fetch. A failure at any step aborts the attempt; no partial
// results are returned.
type Engine struct {
	service     services.Service
	ranker      *ranker.Ranker
	searchLimit int
	topTracks   int
	rankEnabled bool
}

// EngineOpts contains configuration options for creating an Engine.
type EngineOpts struct {
	SearchLimit int  // playlist candidates to request (default 10)
	TopTracks   int  // tracks to include in the result (default 5)
	DisableRank bool // skip the heuristic and take the first candidate
}

// NewEngine creates an Engine around the given service and ranker.
func NewEngine(svc services.Service, r *ranker.Ranker, opts EngineOpts) *Engine {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 10
	}
	if opts.TopTracks <= 0 {
		opts.TopTracks = 5
	}
	if r == nil {
		r = ranker.New(ranker.DefaultWeights())
	}

	return &Engine{
		service:     svc,
		ranker:      r,
		searchLimit: opts.SearchLimit,
		topTracks:   opts.TopTracks,
		rankEnabled: !opts.DisableRank,
	}
}

// Recommend produces a Recommendation for the given mood.
//
// Fails with [shared.ErrInvalidInput] on an empty mood and
// [shared.ErrNoPlaylists] when the search returns nothing. When the ranker is
// disabled or yields no result, the first candidate is used.
func (e *Engine) Recommend(ctx context.Context, mood string) (*models.Recommendation, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, fmt.Errorf("%w: mood is empty", shared.ErrInvalidInput)
	}

	if e.service == nil {
		return nil, fmt.Errorf("%w: music service not initialized", shared.ErrAPIRequest)
	}

	candidates, err := e.service.SearchPlaylists(ctx, mood, e.searchLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for mood %q", shared.ErrNoPlaylists, mood)
	}

	var best *models.Playlist
	if e.rankEnabled {
		best = e.ranker.ChooseBest(candidates, mood)
	}
	if best == nil {
		best = &candidates[0]
	}

	tracks, err := e.service.PlaylistTracks(ctx, best.ID, e.topTracks)
	if err != nil {
		return nil, err
	}

	return &models.Recommendation{
		Mood:     mood,
		Playlist: *best,
		Tracks:   tracks,
	}, nil
}
