// package services defines interface Service for interacting with music provider HTTP APIs
package services

import (
	"context"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
)

// Service defines the read operations the recommendation pipeline needs from a
// music provider (currently Spotify).
type Service interface {
	// SearchPlaylists searches the provider for playlists matching the mood
	// string. Fails with [shared.ErrInvalidInput] before any network call when
	// the mood is empty or whitespace.
	SearchPlaylists(ctx context.Context, mood string, limit int) ([]models.Playlist, error)

	// PlaylistTracks returns up to topN tracks from the given playlist,
	// preserving playlist order. Entries without a track payload are skipped.
	PlaylistTracks(ctx context.Context, playlistID string, topN int) ([]models.Track, error)

	// Name returns the name of the provider (e.g., "Spotify")
	Name() string
}
