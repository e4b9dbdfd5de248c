package main

import (
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/services"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)
	shared.LoadDotenv()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var spotifyService services.Service
	creds := config.Credentials.Spotify
	if creds.ClientID != "" && creds.ClientSecret != "" && creds.RefreshToken != "" {
		cacheTTL := time.Duration(config.Recommend.TokenCacheSeconds) * time.Second
		if svc, err := services.NewSpotifyService(creds.Map(), cacheTTL); err == nil {
			spotifyService = svc
		} else {
			logger.Warnf("spotify service unavailable: %v", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Spotify: spotifyService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "spomood",
		Usage:    "Recommend Spotify playlists & tracks for a mood",
		Version:  "0.2.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
