package services

import "golang.org/x/oauth2"

const spotifyAuthURL = "https://accounts.spotify.com/authorize"

// Scopes required for reading playlists; requested during the one-time
// authorization flow so the refresh token covers them.
var spotifyScopes = []string{
	"playlist-read-private",
	"playlist-read-collaborative",
}

// OAuthConfig builds the [oauth2.Config] used by the one-time bootstrap flow
// that captures a refresh token via the local callback listener.
func OAuthConfig(clientID, clientSecret, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       spotifyScopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}
}
