package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/formatter"
)

// Recommender produces a user-facing recommendation text for a mood.
//
// Two implementations exist: [DirectRecommender], which drives the engine
// itself, and [AgentRecommender], which delegates orchestration to an external
// reasoner and falls back to the direct path when that fails. The direct path
// is always available and is the default.
type Recommender interface {
	Recommend(ctx context.Context, mood string) (string, error)
}

// Reasoner is the boundary to an external LLM orchestrator capable of driving
// the search tool on its own (e.g. a Gemini-backed agent).
type Reasoner interface {
	// Respond takes a user prompt and returns the orchestrator's reply.
	Respond(ctx context.Context, prompt string) (string, error)

	// Model returns the model identifier the reasoner is configured with.
	Model() string
}

// NewRecommender selects an implementation by runtime capability: the agent
// path when a reasoner is available, otherwise the direct path.
func NewRecommender(engine *Engine, reasoner Reasoner, logger *log.Logger) Recommender {
	direct := &DirectRecommender{engine: engine}
	if reasoner == nil {
		return direct
	}
	return &AgentRecommender{
		reasoner: reasoner,
		fallback: direct,
		logger:   logger,
	}
}

// DirectRecommender runs the engine and formats the result.
type DirectRecommender struct {
	engine *Engine
}

func (d *DirectRecommender) Recommend(ctx context.Context, mood string) (string, error) {
	rec, err := d.engine.Recommend(ctx, mood)
	if err != nil {
		return "", err
	}
	return formatter.Format(rec), nil
}

// AgentRecommender asks the reasoner to orchestrate the tool call. Any
// reasoner failure falls back to the direct path, with the failure noted in
// the returned text.
type AgentRecommender struct {
	reasoner Reasoner
	fallback *DirectRecommender
	logger   *log.Logger
}

func (a *AgentRecommender) Recommend(ctx context.Context, mood string) (string, error) {
	prompt := fmt.Sprintf("User mood: %s\nAction: use the playlist search tool to find the best playlist and return the top tracks.", mood)

	reply, err := a.reasoner.Respond(ctx, prompt)
	if err == nil {
		return reply, nil
	}

	if a.logger != nil {
		a.logger.Warnf("agent orchestration failed, falling back to direct call: %v", err)
	}

	text, directErr := a.fallback.Recommend(ctx, mood)
	if directErr != nil {
		return "", directErr
	}

	note := fmt.Sprintf("(Agent orchestration failed with: %v)\nFalling back to direct Spotify call.\n\n", err)
	return note + text, nil
}
