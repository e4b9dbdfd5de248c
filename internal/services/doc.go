// Package services defines the [Service] interface for music streaming providers and implements it for Spotify.
//
// # Service Interface
//
// The recommendation pipeline depends only on the two read operations
// [Service.SearchPlaylists] and [Service.PlaylistTracks], so test harnesses
// and future providers can swap in freely.
//
// # Token Management
//
// [TokenSource] implements the OAuth refresh_token grant directly: HTTP Basic
// auth with client id/secret against the accounts endpoint, with the access
// token cached in memory until expiry. The cached lifetime is
// min(server-declared expires_in, configured ceiling). A mutex guards the
// cache so concurrent callers trigger at most one refresh per expiry window.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrMissingCredentials] : credential bundle incomplete
//   - [shared.ErrRefreshFailed] : token exchange rejected or malformed
//   - [shared.ErrAPIRequest] : non-2xx API response
//   - [shared.ErrRateLimited] : HTTP 429, message carries the Retry-After hint
//   - [shared.ErrInvalidInput] : empty mood or playlist id, raised before any network call
//
// The core performs no retries; errors bubble unmodified to the caller.
package services
