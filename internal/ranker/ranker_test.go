package ranker

import (
	"testing"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
)

func TestRanker(t *testing.T) {
	r := New(DefaultWeights())

	t.Run("Score", func(t *testing.T) {
		t.Run("name match", func(t *testing.T) {
			p := models.Playlist{Name: "happy vibes"}
			if got := r.Score(p, "happy"); got != 50 {
				t.Errorf("expected 50, got %d", got)
			}
		})

		t.Run("description match", func(t *testing.T) {
			p := models.Playlist{Name: "good times", Description: "for happy days"}
			if got := r.Score(p, "happy"); got != 30 {
				t.Errorf("expected 30, got %d", got)
			}
		})

		t.Run("case insensitive", func(t *testing.T) {
			p := models.Playlist{Name: "HAPPY Hits", Description: "Feeling HaPpY"}
			if got := r.Score(p, "Happy"); got != 80 {
				t.Errorf("expected 80, got %d", got)
			}
		})

		t.Run("follower bonus", func(t *testing.T) {
			p := models.Playlist{Name: "other", Followers: 5500}
			if got := r.Score(p, "happy"); got != 5 {
				t.Errorf("expected 5, got %d", got)
			}
		})

		t.Run("follower bonus capped", func(t *testing.T) {
			p := models.Playlist{Name: "other", Followers: 5_000_000}
			if got := r.Score(p, "happy"); got != 20 {
				t.Errorf("expected cap of 20, got %d", got)
			}
		})

		t.Run("custom weights", func(t *testing.T) {
			custom := New(Weights{Name: 10, Description: 5, FollowerDivisor: 100, FollowerCap: 3})
			p := models.Playlist{Name: "happy", Description: "happy", Followers: 1000}
			if got := custom.Score(p, "happy"); got != 18 {
				t.Errorf("expected 18, got %d", got)
			}
		})
	})

	t.Run("ChooseBest", func(t *testing.T) {
		t.Run("deterministic selection", func(t *testing.T) {
			candidates := []models.Playlist{
				{Name: "happy vibes", Followers: 2000},
				{Name: "sad songs", Followers: 50000},
			}

			// happy vibes: 50 + 2 = 52, sad songs: 0 + 20 = 20
			best := r.ChooseBest(candidates, "happy")
			if best == nil {
				t.Fatal("expected a selection")
			}
			if best.Name != "happy vibes" {
				t.Errorf("expected 'happy vibes', got %s", best.Name)
			}
		})

		t.Run("ties break by input order", func(t *testing.T) {
			candidates := []models.Playlist{
				{ID: "first", Name: "calm mornings"},
				{ID: "second", Name: "calm evenings"},
			}

			best := r.ChooseBest(candidates, "calm")
			if best == nil {
				t.Fatal("expected a selection")
			}
			if best.ID != "first" {
				t.Errorf("expected first maximal candidate, got %s", best.ID)
			}
		})

		t.Run("empty candidate list", func(t *testing.T) {
			if best := r.ChooseBest(nil, "happy"); best != nil {
				t.Errorf("expected nil for empty input, got %+v", best)
			}
		})

		t.Run("later higher score wins", func(t *testing.T) {
			candidates := []models.Playlist{
				{ID: "low", Name: "random mix"},
				{ID: "high", Name: "focus beats", Description: "deep focus"},
			}

			best := r.ChooseBest(candidates, "focus")
			if best == nil || best.ID != "high" {
				t.Errorf("expected the higher-scoring candidate, got %+v", best)
			}
		})
	})

	t.Run("New", func(t *testing.T) {
		t.Run("zero divisor falls back to default", func(t *testing.T) {
			r := New(Weights{Name: 1})
			if r.weights.FollowerDivisor != 1000 {
				t.Errorf("expected divisor fallback 1000, got %d", r.weights.FollowerDivisor)
			}
		})
	})
}
