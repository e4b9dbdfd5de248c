// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
)

// MockService is a configurable test double for [services.Service].
type MockService struct {
	Playlists    []models.Playlist
	Tracks       []models.Track
	SearchErr    error
	TracksErr    error
	SearchCalls  int
	TracksCalls  int
	LastMood     string
	LastPlaylist string
	LastTopN     int
}

func (m *MockService) SearchPlaylists(ctx context.Context, mood string, limit int) ([]models.Playlist, error) {
	m.SearchCalls++
	m.LastMood = mood
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	return m.Playlists, nil
}

func (m *MockService) PlaylistTracks(ctx context.Context, playlistID string, topN int) ([]models.Track, error) {
	m.TracksCalls++
	m.LastPlaylist = playlistID
	m.LastTopN = topN
	if m.TracksErr != nil {
		return nil, m.TracksErr
	}
	tracks := m.Tracks
	if topN > 0 && topN < len(tracks) {
		tracks = tracks[:topN]
	}
	return tracks, nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
