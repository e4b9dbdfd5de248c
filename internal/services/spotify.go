// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

const spotifyBaseURL = "https://api.spotify.com/v1"

// searchPageSize is the fixed page size used when listing playlist tracks.
const searchPageSize = 50

type followers struct {
	Total int `json:"total"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// spotifyPlaylist represents a playlist object from the search endpoint.
type spotifyPlaylist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Owner        owner        `json:"owner"`
	ExternalURLs externalURLs `json:"external_urls"`
	Followers    followers    `json:"followers"`
}

// searchResponse wraps the playlist page of a /search response. Items may
// legally contain null entries, hence the pointer element type.
type searchResponse struct {
	Playlists struct {
		Items []*spotifyPlaylist `json:"items"`
	} `json:"playlists"`
}

type spotifyArtist struct {
	Name string `json:"name"`
}

// spotifyTrack represents a track object within a playlist items page.
type spotifyTrack struct {
	Name         string          `json:"name"`
	Artists      []spotifyArtist `json:"artists"`
	PreviewURL   string          `json:"preview_url"`
	ExternalURLs externalURLs    `json:"external_urls"`
}

// playlistTracksResponse is a page of /playlists/{id}/tracks. Track is a
// pointer because local files and removed tracks yield null payloads.
type playlistTracksResponse struct {
	Items []struct {
		Track *spotifyTrack `json:"track"`
	} `json:"items"`
}

// SpotifyService implements [Service] against the Spotify Web API.
//
// Every call obtains a bearer token from the [TokenSource] first; a rate
// limiter paces requests so bursts of invocations stay under the API quota.
type SpotifyService struct {
	tokens     *TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewSpotifyService creates a Spotify service with the given credential map
// (client_id, client_secret, refresh_token).
func NewSpotifyService(credentials map[string]string, cacheTTL time.Duration) (*SpotifyService, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	tokens, err := NewTokenSource(credentials, cacheTTL, client)
	if err != nil {
		return nil, err
	}

	return &SpotifyService{
		tokens:     tokens,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		baseURL:    spotifyBaseURL,
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs an authenticated GET against the Spotify API and decodes
// the JSON response into result.
//
// Status mapping: 429 becomes [shared.ErrRateLimited] carrying the server's
// Retry-After hint; any other non-2xx becomes [shared.ErrAPIRequest]. A token
// manager failure propagates unmodified.
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	apiURL := s.baseURL + endpoint
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter == "" {
			retryAfter = "1"
		}
		return fmt.Errorf("%w: retry after %s seconds", shared.ErrRateLimited, retryAfter)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
		}
	}

	return nil
}

// SearchPlaylists searches Spotify for playlists matching the mood string.
//
// The query is built as "<mood> playlist". Null entries in the result page are
// dropped before conversion.
func (s *SpotifyService) SearchPlaylists(ctx context.Context, mood string, limit int) ([]models.Playlist, error) {
	if strings.TrimSpace(mood) == "" {
		return nil, fmt.Errorf("%w: mood is empty", shared.ErrInvalidInput)
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > searchPageSize {
		limit = searchPageSize
	}

	params := url.Values{
		"q":     {mood + " playlist"},
		"type":  {"playlist"},
		"limit": {fmt.Sprintf("%d", limit)},
	}

	var resp searchResponse
	if err := s.doRequest(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	playlists := make([]models.Playlist, 0, len(resp.Playlists.Items))
	for _, p := range resp.Playlists.Items {
		if p == nil {
			continue
		}
		playlists = append(playlists, models.Playlist{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Owner:       p.Owner.DisplayName,
			ExternalURL: p.ExternalURLs.Spotify,
			Followers:   p.Followers.Total,
		})
	}

	return playlists, nil
}

// PlaylistTracks fetches one page of playlist tracks and returns the first
// topN entries that carry a track payload, in playlist order.
func (s *SpotifyService) PlaylistTracks(ctx context.Context, playlistID string, topN int) ([]models.Track, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: playlist id is empty", shared.ErrInvalidInput)
	}
	if topN <= 0 {
		topN = 10
	}

	endpoint := fmt.Sprintf("/playlists/%s/tracks", playlistID)
	params := url.Values{"limit": {fmt.Sprintf("%d", searchPageSize)}}

	var resp playlistTracksResponse
	if err := s.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	tracks := make([]models.Track, 0, topN)
	for _, item := range resp.Items {
		if item.Track == nil {
			continue
		}

		artists := make([]string, 0, len(item.Track.Artists))
		for _, a := range item.Track.Artists {
			artists = append(artists, a.Name)
		}

		tracks = append(tracks, models.Track{
			Name:       item.Track.Name,
			Artists:    artists,
			PreviewURL: item.Track.PreviewURL,
			TrackURL:   item.Track.ExternalURLs.Spotify,
		})

		if len(tracks) >= topN {
			break
		}
	}

	return tracks, nil
}
