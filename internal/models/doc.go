// Package models defines the domain entities shared across the recommendation pipeline.
//
// The package contains lightweight DTOs representing Spotify data:
//   - [Playlist] : playlist metadata from the search endpoint
//   - [Track] : simplified track metadata with preview/external links
//   - [Recommendation] : the selected playlist with its top tracks
//
// All types are transient values constructed by internal/services and consumed
// by internal/ranker, internal/tasks, and internal/formatter. Nothing here is
// persisted.
package models
