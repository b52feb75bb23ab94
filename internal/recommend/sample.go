package recommend

import (
	"context"

	"github.com/desertthunder/cratedig/internal/models"
)

// sampleResultsPerSearch is the per-call search width for the sampling
// strategy. The strategy bounds cost by sample count, not result width, so
// this is not exposed as a flag.
const sampleResultsPerSearch = 5

// runSample executes the randomized sampling strategy: search for a bounded
// random subset of input tracks and evaluate every newly discovered playlist
// immediately, crediting each non-input track one point per distinct playlist.
//
// Discovery and evaluation interleave; duplicate playlist IDs across
// different sampled tracks are skipped on sight, so no playlist is ever
// counted twice.
func (e *Engine) runSample(ctx context.Context, progress chan<- ProgressUpdate, input *InputSet, opts Options) *CandidateTable {
	table := NewCandidateTable()

	sampled := e.sampleTracks(input, opts.SearchLimit)
	seen := make(map[string]struct{})

	for i, track := range sampled {
		e.sendProgress(progress, sampledUpdate(i+1, len(sampled), track))

		ids, err := e.svc.SearchPlaylists(ctx, searchQuery(track), sampleResultsPerSearch)
		if err != nil {
			e.logger.Warn("playlist search failed, skipping track", "track", track.Name, "error", err)
			continue
		}

		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			export, err := e.svc.ExportPlaylist(ctx, id)
			if err != nil {
				e.logger.Warn("playlist fetch failed, skipping", "playlist", id, "error", err)
				continue
			}

			creditCandidates(table, input, export.Tracks, 1)
		}
	}

	return table
}

// sampleTracks picks min(limit, len(input)) input tracks without replacement
// using the engine's injected random source. Sampling bounds search volume
// for large playlists at the cost of run-to-run determinism.
func (e *Engine) sampleTracks(input *InputSet, limit int) []models.Track {
	tracks := input.Tracks()
	n := min(limit, len(tracks))

	perm := e.rng.Perm(len(tracks))
	sampled := make([]models.Track, 0, n)
	for _, idx := range perm[:n] {
		sampled = append(sampled, tracks[idx])
	}

	return sampled
}
