package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/cratedig/internal/server"
	"github.com/desertthunder/cratedig/internal/services"
	"github.com/desertthunder/cratedig/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// Auth performs the OAuth2 authorization flow for Spotify.
//
// Starts a local HTTP server on the configured callback address, opens the
// browser for user authorization, exchanges the auth code for tokens, and
// persists them to the config file.
func (r *Runner) Auth(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if config == nil {
		var err error
		if _, statErr := os.Stat(configPath); statErr == nil {
			config, err = shared.LoadConfig(configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				config = shared.DefaultConfig()
			}
		} else {
			config = shared.DefaultConfig()
		}
		shared.ApplyEnv(config)
	}

	if !config.HasCredentials() {
		return fmt.Errorf("%w: Spotify client_id and client_secret are not configured", shared.ErrMissingCredentials)
	}

	spotifyService, err := services.NewSpotifyService(config.Credentials.Spotify.Map())
	if err != nil {
		return fmt.Errorf("failed to create Spotify service: %w", err)
	}

	token, err := r.doOAuth(config, spotifyService)
	if err != nil {
		return err
	}

	if err := config.Credentials.Spotify.Update(token); err != nil {
		return fmt.Errorf("failed to update spotify configuration: %w", err)
	}

	if err := shared.SaveConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", configPath)
	r.writePlain("You can now use: cratedig recommend funnel <playlist>\n")

	return nil
}

// ConfigInit writes the starter config file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlain("Fill in your Spotify credentials, then run: cratedig auth\n")
	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(config *shared.Config, oauthSrv services.OAuthService) (*oauth2.Token, error) {
	state := shared.GenerateState()

	authURL := oauthSrv.GetAuthURL(state)
	oauthHandler := server.NewOAuthHandler(oauthSrv.GetOAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Use(server.LogRequests(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
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
		r.writePlainln("⚠ Could not open browser automatically.")
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
