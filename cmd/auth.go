package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/server"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/services"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

// AuthLogin performs the one-time OAuth2 authorization flow.
//
// Starts a local HTTP server, opens the browser for user authorization,
// exchanges the auth code, and stores the resulting refresh token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	creds := r.config.Credentials.Spotify

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return fmt.Errorf("%w: Spotify client_id and client_secret must be set in config.toml or the environment", shared.ErrMissingCredentials)
	}

	redirectURI := creds.RedirectURI
	if redirectURI == "" {
		redirectURI = fmt.Sprintf("http://%s:%d/callback", r.config.Server.Host, r.config.Server.Port)
	}

	oauthConfig := services.OAuthConfig(creds.ClientID, creds.ClientSecret, redirectURI)

	token, err := r.doOAuth(oauthConfig)
	if err != nil {
		return err
	}

	if cmd.Bool("no-save") {
		r.writeOk("Authorization successful")
		r.writePlain("\nYour SPOTIFY_REFRESH_TOKEN:\n\n%s\n\nSave this in your .env file.\n", token.RefreshToken)
		return nil
	}

	r.config.Credentials.Spotify.RefreshToken = token.RefreshToken
	if err := shared.SaveConfig(configPath, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.writeOk("Authorization successful")
	r.writeOk("Refresh token saved to %s", configPath)
	r.writePlain("\nYou can now use: spomood recommend <mood>\n")

	return nil
}

// AuthStatus verifies the stored credential bundle by forcing a token refresh.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking auth status")

	tokens, err := services.NewTokenSource(r.config.Credentials.Spotify.Map(), 0, r.httpClient)
	if err != nil {
		r.writeWarn("Credentials incomplete: %v", err)
		return err
	}

	if _, err := tokens.Token(ctx); err != nil {
		r.writeWarn("Token refresh failed: %v", err)
		return err
	}

	return r.writeOk("Credentials valid: token refresh succeeded")
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	state := shared.GenerateState()

	authURL := oauthConfig.AuthCodeURL(state)
	oauthHandler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Spotify authorization...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writeWarn("Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	return result.Token, nil
}
