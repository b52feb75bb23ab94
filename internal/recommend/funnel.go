package recommend

import (
	"context"
	"sort"

	"github.com/desertthunder/cratedig/internal/models"
)

// PlaylistHit is a candidate playlist surfaced during discovery with the
// number of distinct input-track searches that returned it.
type PlaylistHit struct {
	ID   string
	Hits int
}

// discoverPlaylists runs phase 1 of the funnel: one cheap search per input
// track, collecting hit counts per playlist as a proxy for overlap before
// committing to full track-list fetches.
//
// A failed search counts as zero results for that track; the run continues.
func (e *Engine) discoverPlaylists(ctx context.Context, progress chan<- ProgressUpdate, input *InputSet, resultsPerTrack int) []PlaylistHit {
	hits := make(map[string]int)
	var order []string // discovery order, for stable ranking

	total := input.Len()
	for i, track := range input.Tracks() {
		e.sendProgress(progress, searchTrackUpdate(i+1, total, track))

		ids, err := e.svc.SearchPlaylists(ctx, searchQuery(track), resultsPerTrack)
		if err != nil {
			e.logger.Warn("playlist search failed, skipping track", "track", track.Name, "error", err)
			continue
		}

		// Count each playlist at most once per input track search
		perQuery := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := perQuery[id]; dup {
				continue
			}
			perQuery[id] = struct{}{}

			if _, seen := hits[id]; !seen {
				order = append(order, id)
			}
			hits[id]++
		}
	}

	ranked := make([]PlaylistHit, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, PlaylistHit{ID: id, Hits: hits[id]})
	}

	// Descending by hit count; stable sort keeps discovery order on ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Hits > ranked[j].Hits
	})

	return ranked
}

// runFunnel executes the two-phase hit-count strategy: discover candidate
// playlists cheaply, then fetch and score only the top fetchLimit of them
// with the artist-diversity formula.
func (e *Engine) runFunnel(ctx context.Context, progress chan<- ProgressUpdate, input *InputSet, opts Options) *CandidateTable {
	table := NewCandidateTable()

	ranked := e.discoverPlaylists(ctx, progress, input, opts.SearchResultsPerTrack)
	if len(ranked) == 0 {
		return table
	}

	e.sendProgress(progress, discoveredUpdate(len(ranked), ranked[0].Hits))

	// Phase 2 cost is bounded by fetchLimit no matter how wide phase 1 went
	if len(ranked) > opts.FetchLimit {
		ranked = ranked[:opts.FetchLimit]
	}

	for i, hit := range ranked {
		e.sendProgress(progress, evaluateUpdate(i+1, len(ranked), hit.Hits))

		export, err := e.svc.ExportPlaylist(ctx, hit.ID)
		if err != nil {
			e.logger.Warn("playlist fetch failed, skipping", "playlist", hit.ID, "error", err)
			e.sendProgress(progress, skippedUpdate(i+1, len(ranked)))
			continue
		}

		score, matches, artists := ScorePlaylist(input, export.Tracks)
		e.sendProgress(progress, evaluatedUpdate(i+1, len(ranked), len(export.Tracks), matches, artists, score))

		if score == 0 {
			continue
		}

		creditCandidates(table, input, export.Tracks, score)
	}

	return table
}

// creditCandidates adds delta to every track in the list that is not part of
// the input playlist (self-exclusion invariant).
func creditCandidates(table *CandidateTable, input *InputSet, tracks []models.Track, delta float64) {
	for _, t := range tracks {
		if input.Contains(t.ID) {
			continue
		}
		table.Add(t, delta)
	}
}

// searchQuery builds the catalogue query for a track: display name followed
// by primary artist.
func searchQuery(t models.Track) string {
	if artist := t.PrimaryArtist(); artist != "" {
		return t.Name + " " + artist
	}
	return t.Name
}
