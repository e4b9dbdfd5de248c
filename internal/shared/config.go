package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file,
// with environment variables taking precedence for credentials.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Recommend   RecommendConfig   `toml:"recommend"`
	Agent       AgentConfig       `toml:"agent"`
	Server      ServerConfig      `toml:"server"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains the Spotify credential bundle: client id/secret plus
// the long-lived refresh token obtained via `auth login`.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RefreshToken string `toml:"refresh_token"`
	RedirectURI  string `toml:"redirect_uri"`
}

// RecommendConfig contains tuning knobs for the recommendation pipeline.
//
// The scoring weights mirror the ranker defaults and exist so deployments can
// tune the heuristic without a rebuild.
type RecommendConfig struct {
	SearchLimit       int `toml:"search_limit"`
	TopTracks         int `toml:"top_tracks"`
	TokenCacheSeconds int `toml:"token_cache_seconds"`
	NameWeight        int `toml:"name_weight"`
	DescriptionWeight int `toml:"description_weight"`
	FollowerDivisor   int `toml:"follower_divisor"`
	FollowerCap       int `toml:"follower_cap"`
}

// AgentConfig contains settings for the optional LLM orchestrator.
type AgentConfig struct {
	Model string `toml:"model"`
}

// ServerConfig contains settings for the local OAuth callback listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config built from the embedded example file with
// environment overrides applied.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveConfig writes the configuration back to a TOML file.
func SaveConfig(path string, config *Config) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// LoadDotenv loads a .env file into the process environment if one exists.
// Missing files are not an error; the environment may already be populated.
func LoadDotenv() {
	_ = godotenv.Load()
}

// applyEnv overlays environment variables onto the config. Environment values
// win over file values so CI and one-off runs need no config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Credentials.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Credentials.Spotify.ClientSecret = v
	}
	if v := os.Getenv("SPOTIFY_REFRESH_TOKEN"); v != "" {
		c.Credentials.Spotify.RefreshToken = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Agent.Model = v
	}
}

// Map converts the Spotify credentials to the map form consumed by service constructors.
func (s SpotifyConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     s.ClientID,
		"client_secret": s.ClientSecret,
		"refresh_token": s.RefreshToken,
		"redirect_uri":  s.RedirectURI,
	}
}
