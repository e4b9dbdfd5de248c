// package models defines the data model for the mood recommendation service
package models

import "strings"

// Playlist represents a playlist candidate returned by a search call.
//
// Transient: produced by the search client, consumed by the ranker.
type Playlist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	ExternalURL string `json:"external_url"`
	Followers   int    `json:"followers"`
}

// Track represents a single recommended track.
type Track struct {
	Name       string   `json:"name"`
	Artists    []string `json:"artists"`
	PreviewURL string   `json:"preview_url,omitempty"`
	TrackURL   string   `json:"track_url,omitempty"`
}

// ArtistList joins the track's artists into a single display string.
func (t Track) ArtistList() string {
	return strings.Join(t.Artists, ", ")
}

// Link returns the preview URL if present, otherwise the external track URL.
// Returns an empty string when neither exists.
func (t Track) Link() string {
	if t.PreviewURL != "" {
		return t.PreviewURL
	}
	return t.TrackURL
}

// Recommendation is the final output artifact: the selected playlist plus an
// ordered list of up to N tracks. Immutable once built.
type Recommendation struct {
	Mood     string   `json:"mood"`
	Playlist Playlist `json:"playlist"`
	Tracks   []Track  `json:"tracks"`
}
