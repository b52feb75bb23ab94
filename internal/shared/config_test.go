package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Host != "127.0.0.1" {
			t.Errorf("expected server host 127.0.0.1, got %s", config.Server.Host)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.Spotify.RedirectURI != "http://127.0.0.1:8080/callback" {
			t.Errorf("expected default redirect URI, got %s", config.Credentials.Spotify.RedirectURI)
		}

		if config.HasCredentials() {
			t.Error("default config should not carry credentials")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Credentials.Spotify.RedirectURI != defaultConfig.Credentials.Spotify.RedirectURI {
			t.Error("created config redirect URI doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:3000/callback"

[server]
host = "0.0.0.0"
port = 3000
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Credentials.Spotify.ClientID != "test_client_id" {
			t.Errorf("expected spotify client_id test_client_id, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if !config.HasCredentials() {
			t.Error("loaded config should report credentials present")
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("SaveConfig Round Trip", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "saved_id"
		config.Credentials.Spotify.AccessToken = "saved_token"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load saved config: %v", err)
		}

		if loaded.Credentials.Spotify.ClientID != "saved_id" {
			t.Errorf("expected saved client_id, got %s", loaded.Credentials.Spotify.ClientID)
		}
		if loaded.Credentials.Spotify.AccessToken != "saved_token" {
			t.Errorf("expected saved access token, got %s", loaded.Credentials.Spotify.AccessToken)
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "env_id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "env_secret")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "file_id"

		ApplyEnv(config)

		if config.Credentials.Spotify.ClientID != "env_id" {
			t.Errorf("expected env to override file value, got %s", config.Credentials.Spotify.ClientID)
		}
		if config.Credentials.Spotify.ClientSecret != "env_secret" {
			t.Errorf("expected env secret, got %s", config.Credentials.Spotify.ClientSecret)
		}
	})

	t.Run("ApplyEnv Keeps File Values", func(t *testing.T) {
		t.Setenv("SPOTIFY_CLIENT_ID", "")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "")

		config := DefaultConfig()
		config.Credentials.Spotify.ClientID = "file_id"
		config.Credentials.Spotify.ClientSecret = "file_secret"

		ApplyEnv(config)

		if config.Credentials.Spotify.ClientID != "file_id" {
			t.Errorf("expected file value preserved, got %s", config.Credentials.Spotify.ClientID)
		}
	})
}

func TestSpotifyConfigToken(t *testing.T) {
	t.Run("nil without an access token", func(t *testing.T) {
		var sc SpotifyConfig
		if sc.Token() != nil {
			t.Error("expected nil token for unauthorized config")
		}
	})

	t.Run("builds token from stored fields", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		sc := SpotifyConfig{
			AccessToken:  "access",
			RefreshToken: "refresh",
			TokenExpiry:  expiry,
		}

		token := sc.Token()
		if token == nil {
			t.Fatal("expected token")
		}
		if token.AccessToken != "access" || token.RefreshToken != "refresh" {
			t.Errorf("unexpected token fields: %+v", token)
		}
		if !token.Expiry.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, token.Expiry)
		}
	})

	t.Run("Update stores token fields", func(t *testing.T) {
		sc := SpotifyConfig{RefreshToken: "old_refresh"}

		err := sc.Update(&oauth2.Token{AccessToken: "new_access"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if sc.AccessToken != "new_access" {
			t.Errorf("expected access token stored, got %s", sc.AccessToken)
		}
		if sc.RefreshToken != "old_refresh" {
			t.Errorf("expected refresh token preserved when absent, got %s", sc.RefreshToken)
		}
	})

	t.Run("Update rejects empty tokens", func(t *testing.T) {
		var sc SpotifyConfig
		if err := sc.Update(nil); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for nil token, got %v", err)
		}
		if err := sc.Update(&oauth2.Token{}); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for empty token, got %v", err)
		}
	})

	t.Run("Map carries all credential fields", func(t *testing.T) {
		sc := SpotifyConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost/callback",
			AccessToken:  "access",
		}

		m := sc.Map()
		if m["client_id"] != "id" || m["client_secret"] != "secret" {
			t.Errorf("unexpected credential map: %v", m)
		}
		if m["access_token"] != "access" {
			t.Errorf("expected access token in map, got %v", m["access_token"])
		}
	})
}
