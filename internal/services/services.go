package services

import (
	"context"

	"github.com/desertthunder/cratedig/internal/models"
	"golang.org/x/oauth2"
)

// Service defines the interface for a music catalogue provider that can read
// playlists, search for them, and create new ones.
type Service interface {
	// Authenticate performs OAuth or token authentication with the service.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, credentials map[string]string) error

	// CurrentUser retrieves the authenticated user's profile.
	CurrentUser(ctx context.Context) (*models.User, error)

	// GetPlaylist retrieves playlist metadata by ID.
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)

	// ExportPlaylist retrieves a playlist with its full track listing,
	// following pagination until exhausted.
	ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error)

	// SearchPlaylists returns up to limit playlist IDs matching a free-text
	// query. Service-side failures yield an empty result, not an error.
	SearchPlaylists(ctx context.Context, query string, limit int) ([]string, error)

	// CreatePlaylist creates a new playlist owned by the given user.
	CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error)

	// AddTracks adds playable references to an existing playlist,
	// batching requests as the service requires.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// OAuthService extends Service for providers authorized through a browser
// flow against a local callback server.
type OAuthService interface {
	Service

	// GetAuthURL returns the OAuth2 authorization URL for user login.
	GetAuthURL(state string) string

	// GetOAuthConfig exposes the OAuth2 config for the callback handler.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate installs a previously obtained token on the service.
	OAuthenticate(ctx context.Context, token *oauth2.Token) error
}
