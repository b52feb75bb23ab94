package recommend

import (
	"fmt"

	"github.com/desertthunder/cratedig/internal/models"
)

// ProgressUpdate represents a progress event during a recommendation run.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Pipeline phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Pipeline phase enumeration
type Phase int

const (
	FetchInput Phase = iota
	Discover
	Evaluate
	Rank
	CreateOutput
)

func (p Phase) String() string {
	switch p {
	case FetchInput:
		return "fetch_input"
	case Discover:
		return "discover"
	case Evaluate:
		return "evaluate"
	case Rank:
		return "rank"
	case CreateOutput:
		return "create_output"
	default:
		return ""
	}
}

func fetchInputUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchInput,
		Step:    1,
		Total:   1,
		Message: "Fetching tracks from input playlist...",
	}
}

func foundInputUpdate(export *models.PlaylistExport) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchInput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found playlist: %s (%d tracks)", export.Playlist.Name, len(export.Tracks)),
		Data:    export,
	}
}

func searchTrackUpdate(step, total int, tr models.Track) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Discover,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Searching: %s - %s", step, total, tr.Name, tr.PrimaryArtist()),
	}
}

func discoveredUpdate(playlists, topHits int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Discover,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d unique playlists, best candidate appeared in %d searches", playlists, topHits),
	}
}

func evaluateUpdate(step, total, hits int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Evaluate,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Fetching playlist (hit count: %d)...", step, total, hits),
	}
}

func evaluatedUpdate(step, total, tracks, matches, artists int, score float64) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Evaluate,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %d tracks, %d matches across %d artists, score=%.0f", step, total, tracks, matches, artists, score),
	}
}

func skippedUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Evaluate,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Skipped (fetch failed)", step, total),
	}
}

func sampledUpdate(step, total int, tr models.Track) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Discover,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Sampled: %s - %s", step, total, tr.Name, tr.PrimaryArtist()),
	}
}

func rankUpdate(candidates, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Rank,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Ranking %d candidates, keeping top %d", candidates, count),
	}
}

func createUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreateOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Creating playlist: %s", name),
	}
}

func createdUpdate(pl *models.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreateOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Playlist created: %s (ID: %s)", pl.Name, pl.ID),
		Data:    pl,
	}
}
