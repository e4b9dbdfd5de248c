// package ranker scores playlist candidates against a mood string
package ranker

import (
	"strings"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
)

// Weights holds the tuning constants for the scoring heuristic. The defaults
// are arbitrary tuning choices, kept configurable rather than hard invariants.
type Weights struct {
	Name            int // awarded when the mood appears in the playlist name
	Description     int // awarded when the mood appears in the description
	FollowerDivisor int // followers are scored in units of this many
	FollowerCap     int // upper bound on the follower contribution
}

// DefaultWeights returns the stock heuristic constants.
func DefaultWeights() Weights {
	return Weights{
		Name:            50,
		Description:     30,
		FollowerDivisor: 1000,
		FollowerCap:     20,
	}
}

// Ranker selects the best playlist candidate for a mood.
type Ranker struct {
	weights Weights
}

// New creates a Ranker with the given weights. Zero-valued divisors fall back
// to the defaults to keep Score well-defined.
func New(weights Weights) *Ranker {
	if weights.FollowerDivisor <= 0 {
		weights.FollowerDivisor = DefaultWeights().FollowerDivisor
	}
	return &Ranker{weights: weights}
}

// Score computes the deterministic heuristic score for a single candidate:
// name match, description match, and a capped follower bonus.
func (r *Ranker) Score(p models.Playlist, mood string) int {
	moodLower := strings.ToLower(mood)

	score := 0
	if strings.Contains(strings.ToLower(p.Name), moodLower) {
		score += r.weights.Name
	}
	if strings.Contains(strings.ToLower(p.Description), moodLower) {
		score += r.weights.Description
	}

	followerScore := p.Followers / r.weights.FollowerDivisor
	if followerScore > r.weights.FollowerCap {
		followerScore = r.weights.FollowerCap
	}

	return score + followerScore
}

// ChooseBest returns the candidate with the maximum score. Ties break by input
// order: the first maximal candidate wins. Returns nil only when the candidate
// list is empty.
func (r *Ranker) ChooseBest(candidates []models.Playlist, mood string) *models.Playlist {
	if len(candidates) == 0 {
		return nil
	}

	best := 0
	bestScore := r.Score(candidates[0], mood)
	for i := 1; i < len(candidates); i++ {
		if s := r.Score(candidates[i], mood); s > bestScore {
			best, bestScore = i, s
		}
	}

	return &candidates[best]
}
