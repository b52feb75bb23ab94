// Spotify API implementation of [Service]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/cratedig/internal/models"
	"github.com/desertthunder/cratedig/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"

	// Web API caps for playlist operations
	trackPageSize = 100
	addBatchSize  = 100

	defaultRateLimit = 5 // requests per second
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyUser represents a Spotify user profile.
type SpotifyUser struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"display_name"`
	Images      []SpotifyImage `json:"images"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Artists []SpotifyArtist `json:"artists"`
	URI     string          `json:"uri"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
//
// Track is a pointer because the API reports removed and local entries as null.
type SpotifyPlaylistTrack struct {
	AddedAt string        `json:"added_at"`
	Track   *SpotifyTrack `json:"track"`
}

// SpotifyPaginatedTracks represents one page of a playlist's tracks.
type SpotifyPaginatedTracks struct {
	Items  []SpotifyPlaylistTrack `json:"items"`
	Total  int                    `json:"total"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
	Next   *string                `json:"next"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

type playlistTracksRef struct {
	Total int `json:"total"`
}

// SpotifyPlaylist represents a Spotify playlist.
type SpotifyPlaylist struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Public       bool              `json:"public"`
	Tracks       playlistTracksRef `json:"tracks"`
	URI          string            `json:"uri"`
	ExternalURLs externalURLs      `json:"external_urls"`
}

// searchResponse is the playlist slice of a /search response.
//
// Items are pointers: the API pads result pages with null entries.
type searchResponse struct {
	Playlists struct {
		Items []*struct {
			ID string `json:"id"`
		} `json:"items"`
	} `json:"playlists"`
}

// SpotifyService implements the [Service] interface for Spotify API interactions.
// Uses [oauth2] for authentication and paces all requests through a [rate.Limiter].
type SpotifyService struct {
	config      *oauth2.Config
	token       *oauth2.Token
	httpClient  *http.Client
	limiter     *rate.Limiter
	credentials map[string]string
}

// NewSpotifyService creates a new Spotify service with the given OAuth2 credentials.
func NewSpotifyService(credentials map[string]string) (*SpotifyService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://127.0.0.1:8080/callback"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes: []string{
			"playlist-read-private",
			"playlist-read-collaborative",
			"playlist-modify-public",
			"playlist-modify-private",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}

	return &SpotifyService{
		config:      config,
		httpClient:  http.DefaultClient,
		limiter:     rate.NewLimiter(rate.Limit(defaultRateLimit), 1),
		credentials: credentials,
	}, nil
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// GetAuthURL returns the OAuth2 authorization URL for user login.
func (s *SpotifyService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GetOAuthConfig exposes the OAuth2 config for the callback handler.
func (s *SpotifyService) GetOAuthConfig() *oauth2.Config {
	return s.config
}

// Authenticate performs OAuth2 authentication with Spotify. Expects either an "access_token" or "auth_code" in credentials.
func (s *SpotifyService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if accessToken, ok := credentials["access_token"]; ok && accessToken != "" {
		token := &oauth2.Token{
			AccessToken:  accessToken,
			RefreshToken: credentials["refresh_token"],
		}
		return s.OAuthenticate(ctx, token)
	}

	if authCode, ok := credentials["auth_code"]; ok && authCode != "" {
		token, err := s.config.Exchange(ctx, authCode)
		if err != nil {
			return fmt.Errorf("failed to exchange auth code: %w", err)
		}
		return s.OAuthenticate(ctx, token)
	}

	return fmt.Errorf("%w: missing access_token or auth_code", shared.ErrMissingCredentials)
}

// OAuthenticate installs a previously obtained token on the service.
//
// The [oauth2.Config.Client] transparently refreshes expired tokens when a
// refresh token is present.
func (s *SpotifyService) OAuthenticate(ctx context.Context, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("%w: empty token", shared.ErrInvalidInput)
	}
	s.token = token
	s.httpClient = s.config.Client(ctx, token)
	return nil
}

// doRequest performs an authenticated, rate-limited HTTP request to the Spotify API.
func (s *SpotifyService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	if s.token == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter interrupted: %w", err)
	}

	apiURL := spotifyBaseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: status %d", shared.ErrTokenExpired, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// CurrentUser retrieves the current authenticated user's profile.
func (s *SpotifyService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user SpotifyUser
	if err := s.doRequest(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &models.User{ID: user.ID, DisplayName: user.DisplayName}, nil
}

// GetPlaylist retrieves playlist metadata by ID.
func (s *SpotifyService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	endpoint := fmt.Sprintf("/playlists/%s", playlistID)

	var playlist SpotifyPlaylist
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &playlist); err != nil {
		return nil, err
	}

	pl := toPlaylist(playlist)
	return &pl, nil
}

// ExportPlaylist retrieves a playlist with its full track listing.
//
// Follows pagination until exhausted and skips entries with no underlying
// track (removed or local items come back as null).
func (s *SpotifyService) ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error) {
	meta, err := s.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	var tracks []models.Track
	offset := 0

	for {
		endpoint := fmt.Sprintf("/playlists/%s/tracks?limit=%d&offset=%d", playlistID, trackPageSize, offset)

		var page SpotifyPaginatedTracks
		if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			if item.Track == nil || item.Track.ID == "" {
				continue
			}
			tracks = append(tracks, toTrack(*item.Track))
		}

		if page.Next == nil {
			break
		}
		offset += trackPageSize
	}

	return &models.PlaylistExport{Playlist: *meta, Tracks: tracks}, nil
}

// SearchPlaylists returns up to limit playlist IDs matching a free-text query.
//
// Request failures degrade to an empty result so a single bad query never
// aborts a discovery run; authentication errors still propagate.
func (s *SpotifyService) SearchPlaylists(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	endpoint := fmt.Sprintf("/search?q=%s&type=playlist&limit=%d", url.QueryEscape(query), limit)

	var response searchResponse
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		if errors.Is(err, shared.ErrTokenExpired) || errors.Is(err, shared.ErrNotAuthenticated) {
			return nil, err
		}
		return []string{}, nil
	}

	ids := make([]string, 0, len(response.Playlists.Items))
	for _, item := range response.Playlists.Items {
		if item == nil || item.ID == "" {
			continue
		}
		ids = append(ids, item.ID)
	}

	return ids, nil
}

// CreatePlaylist creates a new playlist owned by the given user.
func (s *SpotifyService) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error) {
	endpoint := fmt.Sprintf("/users/%s/playlists", userID)
	body := map[string]any{
		"name":        name,
		"description": description,
		"public":      public,
	}

	var playlist SpotifyPlaylist
	if err := s.doRequest(ctx, http.MethodPost, endpoint, body, &playlist); err != nil {
		return nil, err
	}

	pl := toPlaylist(playlist)
	return &pl, nil
}

// AddTracks adds playable references to an existing playlist in batches of
// at most 100 URIs, the Web API's per-request cap.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	endpoint := fmt.Sprintf("/playlists/%s/tracks", playlistID)

	for start := 0; start < len(uris); start += addBatchSize {
		end := min(start+addBatchSize, len(uris))

		body := map[string]any{"uris": uris[start:end]}
		if err := s.doRequest(ctx, http.MethodPost, endpoint, body, nil); err != nil {
			return fmt.Errorf("failed to add tracks %d-%d: %w", start, end, err)
		}
	}

	return nil
}

// ExtractPlaylistID normalizes a playlist web URL, a spotify:playlist: URI,
// or a bare ID to the bare ID.
func ExtractPlaylistID(input string) string {
	input = strings.TrimSpace(input)

	if after, found := strings.CutPrefix(input, "spotify:playlist:"); found {
		return after
	}

	const urlMarker = "open.spotify.com/playlist/"
	if idx := strings.Index(input, urlMarker); idx >= 0 {
		id := input[idx+len(urlMarker):]
		id, _, _ = strings.Cut(id, "?")
		id, _, _ = strings.Cut(id, "/")
		return id
	}

	return input
}

func toTrack(st SpotifyTrack) models.Track {
	artists := make([]string, 0, len(st.Artists))
	for _, a := range st.Artists {
		artists = append(artists, a.Name)
	}
	return models.Track{
		ID:      st.ID,
		URI:     st.URI,
		Name:    st.Name,
		Artists: artists,
	}
}

func toPlaylist(sp SpotifyPlaylist) models.Playlist {
	return models.Playlist{
		ID:          sp.ID,
		Name:        sp.Name,
		Description: sp.Description,
		TrackCount:  sp.Tracks.Total,
		Public:      sp.Public,
		URL:         sp.ExternalURLs.Spotify,
	}
}
