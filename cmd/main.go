package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/cratedig/internal/services"
	"github.com/desertthunder/cratedig/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.ApplyEnv(config)

	var spotifyService services.Service
	if config.HasCredentials() {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			if token := config.Credentials.Spotify.Token(); token != nil {
				if err := svc.OAuthenticate(context.Background(), token); err != nil {
					logger.Warnf("stored token rejected: %v", err)
				}
			}
			spotifyService = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Spotify: spotifyService,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "cratedig",
		Usage:    "Recommend songs for a playlist from co-occurrence in public playlists",
		Version:  "0.2.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingCredentials):
			logger.Error("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set")
			logger.Error("set them in config.toml, a .env file, or the environment")
			logger.Error("get credentials at: https://developer.spotify.com/dashboard")
		case errors.Is(err, shared.ErrEmptyPlaylist):
			logger.Error("no tracks found in the input playlist")
		case errors.Is(err, shared.ErrNoCandidates):
			logger.Error("could not find any recommendations")
			logger.Error("try increasing --fetch-limit or --search-limit")
		default:
			logger.Errorf("application error: %v", err)
		}
		os.Exit(1)
	}
}
