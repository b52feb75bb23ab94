// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/cratedig/internal/models"
)

// MockService is a configurable test double for the catalogue
// [services.Service] interface.
//
// SearchResults maps a full query string to the playlist IDs it returns;
// Exports maps playlist IDs to their full contents. SearchCalls and
// ExportCalls record every invocation for call-budget assertions.
type MockService struct {
	User          *models.User
	Exports       map[string]*models.PlaylistExport
	SearchResults map[string][]string
	CreateResult  *models.Playlist

	SearchErr map[string]error // per-query search failures
	ExportErr map[string]error // per-playlist fetch failures
	CreateErr error
	AddErr    error
	UserErr   error

	SearchCalls []string
	ExportCalls []string
	Added       map[string][]string // playlist ID -> URIs added, in call order
	CreatedName string
	CreatedDesc string
}

func NewMockService() *MockService {
	return &MockService{
		User:          &models.User{ID: "user1", DisplayName: "Test User"},
		Exports:       map[string]*models.PlaylistExport{},
		SearchResults: map[string][]string{},
		SearchErr:     map[string]error{},
		ExportErr:     map[string]error{},
		Added:         map[string][]string{},
	}
}

func (m *MockService) Name() string { return "mock" }

func (m *MockService) Authenticate(ctx context.Context, credentials map[string]string) error {
	return nil
}

func (m *MockService) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.UserErr != nil {
		return nil, m.UserErr
	}
	return m.User, nil
}

func (m *MockService) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if export, ok := m.Exports[playlistID]; ok {
		pl := export.Playlist
		return &pl, nil
	}
	return nil, fmt.Errorf("playlist not found")
}

func (m *MockService) ExportPlaylist(ctx context.Context, playlistID string) (*models.PlaylistExport, error) {
	m.ExportCalls = append(m.ExportCalls, playlistID)
	if err, ok := m.ExportErr[playlistID]; ok {
		return nil, err
	}
	if export, ok := m.Exports[playlistID]; ok {
		return export, nil
	}
	return nil, fmt.Errorf("playlist not found")
}

func (m *MockService) SearchPlaylists(ctx context.Context, query string, limit int) ([]string, error) {
	m.SearchCalls = append(m.SearchCalls, query)
	if err, ok := m.SearchErr[query]; ok {
		return nil, err
	}
	ids := m.SearchResults[query]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, userID, name, description string, public bool) (*models.Playlist, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.CreatedName = name
	m.CreatedDesc = description
	if m.CreateResult != nil {
		return m.CreateResult, nil
	}
	return &models.Playlist{
		ID:     "created1",
		Name:   name,
		Public: public,
		URL:    "https://open.spotify.com/playlist/created1",
	}, nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Added[playlistID] = append(m.Added[playlistID], uris...)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)
