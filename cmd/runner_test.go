package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/models"
	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
	tu "github.com/SridharSuresh2709/SpoMoodAgent/internal/testing"
)

// newTestRunner builds a Runner wired to a buffer and a mock service, plus the
// CLI app around it so actions run the way main runs them.
func newTestRunner(svc *tu.MockService) (*Runner, *cli.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := shared.NewLogger(io.Discard)

	opts := RunnerOpts{
		Logger: logger,
		Output: buf,
	}
	// Only set Spotify for a non-nil mock: assigning a nil *MockService
	// directly would produce a non-nil interface value and defeat the
	// runner's nil-service check.
	if svc != nil {
		opts.Spotify = svc
	}
	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "spomood",
		Commands: runner.register(),
	}

	return runner, app, buf
}

func searchResults() []models.Playlist {
	return []models.Playlist{
		{ID: "pl1", Name: "random mix", Followers: 100},
		{ID: "pl2", Name: "happy vibes", Owner: "DJ Test", ExternalURL: "https://open.spotify.com/playlist/pl2", Followers: 2000},
	}
}

func TestNewRunner(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})

		if r.config == nil {
			t.Error("expected default config")
		}
		if r.logger == nil {
			t.Error("expected default logger")
		}
		if r.output == nil {
			t.Error("expected default output")
		}
		if r.httpClient == nil {
			t.Error("expected default http client")
		}
		if r.palette == nil {
			t.Error("expected default palette")
		}
	})

	t.Run("registers commands", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})
		commands := r.register()

		if len(commands) != 3 {
			t.Fatalf("expected 3 top-level commands, got %d", len(commands))
		}

		names := map[string]bool{}
		for _, c := range commands {
			names[c.Name] = true
		}
		for _, want := range []string{"recommend", "auth", "setup"} {
			if !names[want] {
				t.Errorf("missing command %q", want)
			}
		}
	})
}

func TestWriteHelpers(t *testing.T) {
	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes payload with trailing newline", func(t *testing.T) {
			r, _, buf := newTestRunner(nil)

			if err := r.writeJSON(map[string]string{"mood": "happy"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.HasSuffix(buf.String(), "\n") {
				t.Error("expected trailing newline")
			}
			if !strings.Contains(buf.String(), `"mood":"happy"`) {
				t.Errorf("unexpected output: %q", buf.String())
			}
		})

		t.Run("writer failure", func(t *testing.T) {
			r := NewRunner(RunnerOpts{Output: &tu.FWriter{}, Logger: shared.NewLogger(io.Discard)})

			if err := r.writeJSON(map[string]string{"k": "v"}, false); err == nil {
				t.Error("expected write error")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		r, _, buf := newTestRunner(nil)

		if err := r.writePlain("hello %s", "world"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if buf.String() != "hello world" {
			t.Errorf("unexpected output: %q", buf.String())
		}
	})

	t.Run("writeOk and writeWarn prefix markers", func(t *testing.T) {
		r, _, buf := newTestRunner(nil)

		r.writeOk("done")
		r.writeWarn("careful")

		out := buf.String()
		if !strings.Contains(out, "✓ done") {
			t.Errorf("missing ok marker: %q", out)
		}
		if !strings.Contains(out, "⚠ careful") {
			t.Errorf("missing warn marker: %q", out)
		}
	})
}

func TestRecommendCommand(t *testing.T) {
	t.Run("positional mood argument", func(t *testing.T) {
		svc := &tu.MockService{
			Playlists: searchResults(),
			Tracks:    []models.Track{{Name: "Song One", Artists: []string{"A"}, PreviewURL: "https://p.scdn.co/1"}},
		}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "happy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if svc.LastMood != "happy" {
			t.Errorf("expected mood forwarded, got %q", svc.LastMood)
		}
		if !strings.Contains(buf.String(), "Recommended playlist: happy vibes (by DJ Test)") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})

	t.Run("multi-word mood joined from args", func(t *testing.T) {
		svc := &tu.MockService{Playlists: searchResults(), Tracks: []models.Track{}}
		_, app, _ := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "relaxed", "and", "sleepy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.LastMood != "relaxed and sleepy" {
			t.Errorf("expected joined mood, got %q", svc.LastMood)
		}
	})

	t.Run("mood flag", func(t *testing.T) {
		svc := &tu.MockService{Playlists: searchResults(), Tracks: []models.Track{}}
		_, app, _ := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "--mood", "focused"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.LastMood != "focused" {
			t.Errorf("expected flag mood, got %q", svc.LastMood)
		}
	})

	t.Run("missing mood", func(t *testing.T) {
		svc := &tu.MockService{}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
		if svc.SearchCalls != 0 {
			t.Error("expected no search without a mood")
		}
		if !strings.Contains(buf.String(), "Usage: spomood recommend") {
			t.Errorf("expected usage hint, got:\n%s", buf.String())
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, app, _ := newTestRunner(nil)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "happy"})
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("no playlists found", func(t *testing.T) {
		svc := &tu.MockService{Playlists: []models.Playlist{}}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "obscure"})
		if !errors.Is(err, shared.ErrNoPlaylists) {
			t.Errorf("expected ErrNoPlaylists, got %v", err)
		}
		if !strings.Contains(buf.String(), "No playlists matched") {
			t.Errorf("expected user-facing warning, got:\n%s", buf.String())
		}
	})

	t.Run("rate limit warning", func(t *testing.T) {
		svc := &tu.MockService{SearchErr: shared.ErrRateLimited}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "happy"})
		if !errors.Is(err, shared.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
		if !strings.Contains(buf.String(), "rate limiting") {
			t.Errorf("expected rate limit warning, got:\n%s", buf.String())
		}
	})

	t.Run("json output", func(t *testing.T) {
		svc := &tu.MockService{
			Playlists: searchResults(),
			Tracks:    []models.Track{{Name: "Song One", Artists: []string{"A"}}},
		}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "--json", "happy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), `"mood": "happy"`) {
			t.Errorf("expected pretty JSON payload, got:\n%s", buf.String())
		}
	})

	t.Run("markdown output", func(t *testing.T) {
		svc := &tu.MockService{
			Playlists: searchResults(),
			Tracks:    []models.Track{{Name: "Song One", Artists: []string{"A"}}},
		}
		_, app, buf := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "--markdown", "happy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "# happy vibes") {
			t.Errorf("expected markdown title, got:\n%s", buf.String())
		}
	})

	t.Run("top flag limits tracks", func(t *testing.T) {
		svc := &tu.MockService{Playlists: searchResults(), Tracks: []models.Track{}}
		_, app, _ := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "--top", "2", "happy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.LastTopN != 2 {
			t.Errorf("expected topN 2 forwarded, got %d", svc.LastTopN)
		}
	})

	t.Run("no-rank takes first result", func(t *testing.T) {
		svc := &tu.MockService{Playlists: searchResults(), Tracks: []models.Track{}}
		_, app, _ := newTestRunner(svc)

		err := app.Run(context.Background(), []string{"spomood", "recommend", "--no-rank", "happy"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if svc.LastPlaylist != "pl1" {
			t.Errorf("expected first result pl1, got %s", svc.LastPlaylist)
		}
	})
}

func TestSetupCommand(t *testing.T) {
	t.Run("writes config file", func(t *testing.T) {
		path := t.TempDir() + "/config.toml"
		_, app, buf := newTestRunner(nil)

		err := app.Run(context.Background(), []string{"spomood", "setup", "config", "--config", path})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), path) {
			t.Errorf("expected created path in output, got:\n%s", buf.String())
		}
	})
}
