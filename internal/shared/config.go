package shared

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Server      ServerConfig      `toml:"server"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials and, once authorized, the
// OAuth2 tokens for the session.
type SpotifyConfig struct {
	ClientID     string    `toml:"client_id"`
	ClientSecret string    `toml:"client_secret"`
	RedirectURI  string    `toml:"redirect_uri"`
	AccessToken  string    `toml:"access_token,omitempty"`
	RefreshToken string    `toml:"refresh_token,omitempty"`
	TokenExpiry  time.Time `toml:"token_expiry,omitempty"`
}

// ServerConfig contains settings for the local OAuth callback server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Map converts the Spotify credentials to the map form consumed by service constructors.
func (s SpotifyConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     s.ClientID,
		"client_secret": s.ClientSecret,
		"redirect_uri":  s.RedirectURI,
		"access_token":  s.AccessToken,
		"refresh_token": s.RefreshToken,
	}
}

// Token builds an [oauth2.Token] from the stored credential fields.
//
// Returns nil when no access token has been stored yet.
func (s SpotifyConfig) Token() *oauth2.Token {
	if s.AccessToken == "" {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		Expiry:       s.TokenExpiry,
	}
}

// Update stores the fields of an [oauth2.Token] on the config for persistence.
func (s *SpotifyConfig) Update(token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidInput)
	}
	s.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		s.RefreshToken = token.RefreshToken
	}
	s.TokenExpiry = token.Expiry
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// SaveConfig writes the configuration to the specified path as TOML.
func SaveConfig(path string, config *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
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

// ApplyEnv overlays credentials from the process environment onto the config.
//
// A .env file in the working directory is loaded first when present
// (missing file is not an error). SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET
// take precedence over values from config.toml, so CI and one-off runs never
// need a config file for credentials.
func ApplyEnv(config *Config) {
	_ = godotenv.Load()

	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		config.Credentials.Spotify.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		config.Credentials.Spotify.ClientSecret = secret
	}
}

// HasCredentials reports whether both halves of the client identity are configured.
func (c *Config) HasCredentials() bool {
	return c.Credentials.Spotify.ClientID != "" && c.Credentials.Spotify.ClientSecret != ""
}
