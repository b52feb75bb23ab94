package models

// Track represents a single song from the catalogue.
type Track struct {
	ID      string   // Catalogue-scoped unique identifier
	URI     string   // Playable reference used when adding to playlists
	Name    string   // Display name
	Artists []string // Artist names in catalogue-reported order
}

// PrimaryArtist returns the first listed artist, the unit of artist diversity
// in scoring. Empty string when the catalogue reported no artists.
func (t Track) PrimaryArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// Playlist represents playlist metadata from the catalogue.
type Playlist struct {
	ID          string
	Name        string
	Description string
	TrackCount  int
	Public      bool
	URL         string // Shareable web URL
}

// PlaylistExport represents a playlist with all of its tracks.
type PlaylistExport struct {
	Playlist Playlist
	Tracks   []Track
}

// User represents the authenticated catalogue user.
type User struct {
	ID          string
	DisplayName string
}
