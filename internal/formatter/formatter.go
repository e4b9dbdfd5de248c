// package formatter renders recommendation results for display (plain text, Markdown, JSON)
package formatter

import (
	"bytes"
	"fmt"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

// NoPreviewPlaceholder is rendered when a track has neither a preview URL nor
// an external link.
const NoPreviewPlaceholder = "No preview"

// maxDisplayTracks bounds the enumerated track list in text output.
const maxDisplayTracks = 5

// Format converts a Recommendation into a human-readable summary.
//
// Pure function: playlist name/owner, optional link, optional description,
// then up to five enumerated tracks. An empty track list renders an explicit
// "no tracks" line instead of an empty enumeration.
func Format(rec *models.Recommendation) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Recommended playlist: %s (by %s)\n", rec.Playlist.Name, rec.Playlist.Owner)
	if rec.Playlist.ExternalURL != "" {
		fmt.Fprintf(&buf, "Playlist link: %s\n", rec.Playlist.ExternalURL)
	}
	if rec.Playlist.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", rec.Playlist.Description)
	}

	buf.WriteString("\nTop recommendations:\n")

	if len(rec.Tracks) == 0 {
		buf.WriteString("No tracks found in the playlist.\n")
		return buf.String()
	}

	tracks := rec.Tracks
	if len(tracks) > maxDisplayTracks {
		tracks = tracks[:maxDisplayTracks]
	}

	for i, t := range tracks {
		link := t.Link()
		if link == "" {
			link = NoPreviewPlaceholder
		}
		fmt.Fprintf(&buf, "%d. %s — %s | %s\n", i+1, t.Name, t.ArtistList(), link)
	}

	return buf.String()
}

// ToMarkdown converts a Recommendation into a Markdown document.
func ToMarkdown(rec *models.Recommendation) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", rec.Playlist.Name)
	fmt.Fprintf(&buf, "**Mood**: %s\n", rec.Mood)
	fmt.Fprintf(&buf, "**Curator**: %s\n", rec.Playlist.Owner)
	if rec.Playlist.ExternalURL != "" {
		fmt.Fprintf(&buf, "**Link**: %s\n", rec.Playlist.ExternalURL)
	}
	if rec.Playlist.Description != "" {
		fmt.Fprintf(&buf, "\n%s\n", rec.Playlist.Description)
	}

	buf.WriteString("\n## Tracks\n\n")
	if len(rec.Tracks) == 0 {
		buf.WriteString("_No tracks found in the playlist._\n")
		return buf.String()
	}

	for i, t := range rec.Tracks {
		if link := t.Link(); link != "" {
			fmt.Fprintf(&buf, "%d. [%s](%s) - %s\n", i+1, t.Name, link, t.ArtistList())
		} else {
			fmt.Fprintf(&buf, "%d. %s - %s\n", i+1, t.Name, t.ArtistList())
		}
	}

	return buf.String()
}

// ToJSON marshals the recommendation, optionally indented.
func ToJSON(rec *models.Recommendation, pretty bool) ([]byte, error) {
	data, err := shared.MarshalJSON(rec, pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	return data, nil
}
