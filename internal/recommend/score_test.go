package recommend

import (
	"testing"

	"github.com/desertthunder/cratedig/internal/models"
)

func track(id, name string, artists ...string) models.Track {
	return models.Track{ID: id, URI: "spotify:track:" + id, Name: name, Artists: artists}
}

func TestScorePlaylist(t *testing.T) {
	input := NewInputSet([]models.Track{
		track("a", "Song A", "Artist X"),
		track("b", "Song B", "Artist Y"),
		track("c", "Song C", "Artist X"),
	})

	t.Run("no matches scores zero", func(t *testing.T) {
		playlist := []models.Track{
			track("n1", "Other 1", "Someone"),
			track("n2", "Other 2", "Someone Else"),
		}

		score, matches, artists := ScorePlaylist(input, playlist)
		if score != 0 {
			t.Errorf("expected score 0, got %v", score)
		}
		if matches != 0 {
			t.Errorf("expected 0 matches, got %d", matches)
		}
		if artists != 0 {
			t.Errorf("expected 0 artists, got %d", artists)
		}
	})

	t.Run("matches times artists squared", func(t *testing.T) {
		playlist := []models.Track{
			track("a", "Song A", "Artist X"),
			track("b", "Song B", "Artist Y"),
			track("n1", "New Song", "Someone"),
		}

		score, matches, artists := ScorePlaylist(input, playlist)
		if matches != 2 {
			t.Errorf("expected 2 matches, got %d", matches)
		}
		if artists != 2 {
			t.Errorf("expected 2 distinct artists, got %d", artists)
		}
		if score != 8 {
			t.Errorf("expected score 2 * 2^2 = 8, got %v", score)
		}
	})

	t.Run("repeated artist counts once", func(t *testing.T) {
		// a and c share Artist X, so diversity stays at 1
		playlist := []models.Track{
			track("a", "Song A", "Artist X"),
			track("c", "Song C", "Artist X"),
		}

		score, matches, artists := ScorePlaylist(input, playlist)
		if matches != 2 {
			t.Errorf("expected 2 matches, got %d", matches)
		}
		if artists != 1 {
			t.Errorf("expected 1 distinct artist, got %d", artists)
		}
		if score != 2 {
			t.Errorf("expected score 2 * 1^2 = 2, got %v", score)
		}
	})

	t.Run("invariant to track order", func(t *testing.T) {
		forward := []models.Track{
			track("a", "Song A", "Artist X"),
			track("b", "Song B", "Artist Y"),
			track("n1", "New Song", "Someone"),
		}
		backward := []models.Track{forward[2], forward[1], forward[0]}

		fScore, fMatches, fArtists := ScorePlaylist(input, forward)
		bScore, bMatches, bArtists := ScorePlaylist(input, backward)

		if fScore != bScore || fMatches != bMatches || fArtists != bArtists {
			t.Errorf("score depends on order: (%v,%d,%d) vs (%v,%d,%d)",
				fScore, fMatches, fArtists, bScore, bMatches, bArtists)
		}
	})

	t.Run("doubling distinct artists quadruples score", func(t *testing.T) {
		// 4 matches across 2 artists vs 4 matches across 4 artists
		wide := NewInputSet([]models.Track{
			track("a", "A", "W"),
			track("b", "B", "X"),
			track("c", "C", "Y"),
			track("d", "D", "Z"),
		})
		narrow := NewInputSet([]models.Track{
			track("a", "A", "W"),
			track("b", "B", "W"),
			track("c", "C", "X"),
			track("d", "D", "X"),
		})

		playlist := []models.Track{
			track("a", "A", "W"),
			track("b", "B", "X"),
			track("c", "C", "Y"),
			track("d", "D", "Z"),
		}

		narrowScore, _, narrowArtists := ScorePlaylist(narrow, playlist)
		wideScore, _, wideArtists := ScorePlaylist(wide, playlist)

		if narrowArtists != 2 || wideArtists != 4 {
			t.Fatalf("expected 2 and 4 artists, got %d and %d", narrowArtists, wideArtists)
		}
		if wideScore != 4*narrowScore {
			t.Errorf("expected %v (4x %v), got %v", 4*narrowScore, narrowScore, wideScore)
		}
	})
}

func TestCandidateTable(t *testing.T) {
	t.Run("accumulates scores monotonically", func(t *testing.T) {
		table := NewCandidateTable()
		n1 := track("n1", "New Song", "Someone")

		table.Add(n1, 8)
		table.Add(n1, 2)

		if got := table.Score("n1"); got != 10 {
			t.Errorf("expected accumulated score 10, got %v", got)
		}
		if table.Len() != 1 {
			t.Errorf("expected 1 candidate, got %d", table.Len())
		}
	})

	t.Run("keeps first-seen track info", func(t *testing.T) {
		table := NewCandidateTable()

		table.Add(track("n1", "Original Name", "Someone"), 1)
		table.Add(track("n1", "Renamed Later", "Someone"), 1)

		recs := table.TopK(1)
		if recs[0].Track.Name != "Original Name" {
			t.Errorf("expected first-seen info retained, got %s", recs[0].Track.Name)
		}
	})

	t.Run("TopK orders by score descending", func(t *testing.T) {
		table := NewCandidateTable()
		table.Add(track("low", "Low", "A"), 1)
		table.Add(track("high", "High", "B"), 9)
		table.Add(track("mid", "Mid", "C"), 5)

		recs := table.TopK(3)
		want := []string{"high", "mid", "low"}
		for i, id := range want {
			if recs[i].Track.ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, recs[i].Track.ID)
			}
		}
	})

	t.Run("TopK breaks ties by insertion order", func(t *testing.T) {
		table := NewCandidateTable()
		table.Add(track("first", "First", "A"), 5)
		table.Add(track("second", "Second", "B"), 5)
		table.Add(track("third", "Third", "C"), 5)

		recs := table.TopK(3)
		want := []string{"first", "second", "third"}
		for i, id := range want {
			if recs[i].Track.ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, recs[i].Track.ID)
			}
		}
	})

	t.Run("TopK truncates to n", func(t *testing.T) {
		table := NewCandidateTable()
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			table.Add(track(id, id, "X"), 1)
		}

		if got := len(table.TopK(3)); got != 3 {
			t.Errorf("expected 3 results, got %d", got)
		}
		if got := len(table.TopK(10)); got != 5 {
			t.Errorf("expected all 5 results, got %d", got)
		}
	})

	t.Run("TopK is deterministic for a fixed table", func(t *testing.T) {
		table := NewCandidateTable()
		table.Add(track("x", "X", "A"), 3)
		table.Add(track("y", "Y", "B"), 3)
		table.Add(track("z", "Z", "C"), 7)

		first := table.TopK(3)
		second := table.TopK(3)

		for i := range first {
			if first[i].Track.ID != second[i].Track.ID || first[i].Score != second[i].Score {
				t.Errorf("position %d differs across runs: %v vs %v", i, first[i], second[i])
			}
		}
	})
}
