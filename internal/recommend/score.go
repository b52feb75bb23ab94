package recommend

import (
	"sort"

	"github.com/desertthunder/cratedig/internal/models"
)

// InputSet is the read-only view of the source playlist's tracks used during
// discovery and scoring. Built once per run.
type InputSet struct {
	tracks        []models.Track
	ids           map[string]struct{}
	primaryArtist map[string]string
}

// NewInputSet indexes the input tracks by ID and primary artist.
func NewInputSet(tracks []models.Track) *InputSet {
	s := &InputSet{
		tracks:        tracks,
		ids:           make(map[string]struct{}, len(tracks)),
		primaryArtist: make(map[string]string, len(tracks)),
	}

	for _, t := range tracks {
		s.ids[t.ID] = struct{}{}
		if artist := t.PrimaryArtist(); artist != "" {
			s.primaryArtist[t.ID] = artist
		}
	}

	return s
}

// Contains reports whether the track ID belongs to the input playlist.
func (s *InputSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// PrimaryArtist returns the primary artist recorded for an input track ID.
func (s *InputSet) PrimaryArtist(id string) string {
	return s.primaryArtist[id]
}

// Tracks returns the input tracks in playlist order.
func (s *InputSet) Tracks() []models.Track {
	return s.tracks
}

// Len returns the number of input tracks.
func (s *InputSet) Len() int {
	return len(s.tracks)
}

// ScorePlaylist computes the artist-diversity weighted overlap score for an
// external playlist's track list:
//
//	score = matches × (distinct matching primary artists)²
//
// Squaring the artist count makes playlists echoing many different input
// artists worth far more than playlists repeating a single artist, so
// one-artist "best of" playlists cannot dominate the candidate table.
// A playlist with no matching tracks scores zero.
func ScorePlaylist(input *InputSet, tracks []models.Track) (score float64, matches int, artists int) {
	matchingArtists := make(map[string]struct{})

	for _, t := range tracks {
		if !input.Contains(t.ID) {
			continue
		}
		matches++
		if artist := input.PrimaryArtist(t.ID); artist != "" {
			matchingArtists[artist] = struct{}{}
		}
	}

	artists = len(matchingArtists)
	if matches == 0 {
		return 0, matches, artists
	}

	score = float64(matches) * float64(artists) * float64(artists)
	return score, matches, artists
}

// Recommendation pairs a candidate track with its accumulated score.
type Recommendation struct {
	Track models.Track
	Score float64
}

// CandidateTable accumulates scores for candidate tracks across evaluated
// playlists. Accumulate-only: scores are monotonically non-decreasing and
// the first-seen track record is never overwritten.
type CandidateTable struct {
	scores map[string]float64
	info   map[string]models.Track
	seq    map[string]int // insertion order, breaks score ties deterministically
	next   int
}

// NewCandidateTable creates an empty candidate table.
func NewCandidateTable() *CandidateTable {
	return &CandidateTable{
		scores: make(map[string]float64),
		info:   make(map[string]models.Track),
		seq:    make(map[string]int),
	}
}

// Add credits delta to the track's accumulator, recording the track record
// and insertion sequence on first sight.
func (t *CandidateTable) Add(track models.Track, delta float64) {
	if _, seen := t.scores[track.ID]; !seen {
		t.info[track.ID] = track
		t.seq[track.ID] = t.next
		t.next++
	}
	t.scores[track.ID] += delta
}

// Len returns the number of distinct candidate tracks.
func (t *CandidateTable) Len() int {
	return len(t.scores)
}

// Score returns the accumulated score for a track ID, zero when absent.
func (t *CandidateTable) Score(id string) float64 {
	return t.scores[id]
}

// TopK returns the n highest-scored candidates in descending score order.
//
// Ties break by insertion order (first discovered wins), so the output is
// deterministic for a fixed table.
func (t *CandidateTable) TopK(n int) []Recommendation {
	ids := make([]string, 0, len(t.scores))
	for id := range t.scores {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		si, sj := t.scores[ids[i]], t.scores[ids[j]]
		if si != sj {
			return si > sj
		}
		return t.seq[ids[i]] < t.seq[ids[j]]
	})

	if n > 0 && n < len(ids) {
		ids = ids[:n]
	}

	recs := make([]Recommendation, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, Recommendation{Track: t.info[id], Score: t.scores[id]})
	}

	return recs
}
