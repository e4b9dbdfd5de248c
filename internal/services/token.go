package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

const spotifyTokenURL = "https://accounts.spotify.com/api/token"

// defaultTokenCacheTTL caps how long a refreshed access token is reused, even
// when the server grants a longer lifetime.
const defaultTokenCacheTTL = 300 * time.Second

// TokenSource exchanges a long-lived refresh token for short-lived bearer
// tokens and caches the result in memory.
//
// The credential bundle is immutable after construction. The cached token is
// replaced only by a successful refresh and is never persisted. A mutex
// guarantees at most one in-flight refresh per expiry window; concurrent
// callers wait for its result.
type TokenSource struct {
	clientID     string
	clientSecret string
	refreshToken string
	cacheTTL     time.Duration
	httpClient   *http.Client
	tokenURL     string
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewTokenSource creates a token source from the credential bundle.
//
// Returns [shared.ErrMissingCredentials] when the client id, client secret, or
// refresh token is absent.
func NewTokenSource(credentials map[string]string, cacheTTL time.Duration, client *http.Client) (*TokenSource, error) {
	clientID := credentials["client_id"]
	clientSecret := credentials["client_secret"]
	refreshToken := credentials["refresh_token"]

	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, fmt.Errorf("%w: Spotify client id, client secret, and refresh token are required", shared.ErrMissingCredentials)
	}

	if cacheTTL <= 0 {
		cacheTTL = defaultTokenCacheTTL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &TokenSource{
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
		cacheTTL:     cacheTTL,
		httpClient:   client,
		tokenURL:     spotifyTokenURL,
		now:          time.Now,
	}, nil
}

// tokenResponse is the OAuth token endpoint response shape.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid access token, refreshing it via the OAuth
// refresh_token grant when the cached one is absent or expired.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.accessToken != "" && ts.now().Before(ts.expiresAt) {
		return ts.accessToken, nil
	}

	return ts.refresh(ctx)
}

// refresh performs the refresh_token grant. Caller must hold ts.mu.
func (ts *TokenSource) refresh(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {ts.refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}
	req.SetBasicAuth(ts.clientID, ts.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read token response: %v", shared.ErrRefreshFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", shared.ErrRefreshFailed, resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: malformed token response: %v", shared.ErrRefreshFailed, err)
	}

	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: refresh response missing access_token", shared.ErrRefreshFailed)
	}

	lifetime := time.Duration(tr.ExpiresIn) * time.Second
	if tr.ExpiresIn <= 0 {
		lifetime = time.Hour
	}
	if lifetime > ts.cacheTTL {
		lifetime = ts.cacheTTL
	}

	ts.accessToken = tr.AccessToken
	ts.expiresAt = ts.now().Add(lifetime)

	return ts.accessToken, nil
}
