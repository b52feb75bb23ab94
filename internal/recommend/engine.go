package recommend

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/cratedig/internal/models"
	"github.com/desertthunder/cratedig/internal/services"
	"github.com/desertthunder/cratedig/internal/shared"
)

// Strategy selects the discovery + scoring variant for a run.
type Strategy int

const (
	// StrategyFunnel is the two-phase hit-count funnel with
	// artist-diversity weighted scoring.
	StrategyFunnel Strategy = iota
	// StrategySample is single-phase randomized sampling with simple
	// co-occurrence counting.
	StrategySample
)

func (s Strategy) String() string {
	switch s {
	case StrategyFunnel:
		return "funnel"
	case StrategySample:
		return "sample"
	default:
		return ""
	}
}

// Options configures a recommendation run. Zero values fall back to the
// documented defaults.
type Options struct {
	Strategy Strategy
	Name     string // Output playlist name override
	Count    int    // Recommendations to keep (default 30)

	// Funnel strategy
	FetchLimit            int // Max playlists fully evaluated in phase 2 (default 50)
	SearchResultsPerTrack int // Playlist results per input track search (default 5)

	// Sampling strategy
	SearchLimit int // Max input tracks sampled for search (default 10)
}

func (o *Options) normalize() {
	if o.Count <= 0 {
		o.Count = 30
	}
	if o.FetchLimit <= 0 {
		o.FetchLimit = 50
	}
	if o.SearchResultsPerTrack <= 0 {
		o.SearchResultsPerTrack = 5
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = 10
	}
}

// Result contains everything produced by a completed run.
type Result struct {
	Input           models.Playlist  // Input playlist metadata
	InputTracks     int              // Track count of the input playlist
	Created         *models.Playlist // The created recommendations playlist
	Recommendations []Recommendation // Ranked top-K candidates
}

// Engine orchestrates discovery, scoring, ranking, and playlist creation
// against a single catalogue service.
type Engine struct {
	svc    services.Service
	rng    *rand.Rand
	logger *log.Logger
}

// NewEngine creates an Engine for the given catalogue service.
//
// rng seeds the sampling strategy; pass a fixed-source [rand.Rand] for
// deterministic tests. nil gets a time-seeded source.
func NewEngine(svc services.Service, rng *rand.Rand, logger *log.Logger) *Engine {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>16))
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{svc: svc, rng: rng, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run executes the full pipeline for one input playlist: fetch input tracks,
// discover and score candidate playlists per the selected strategy, rank,
// and create the output playlist.
//
// Fatal conditions are [shared.ErrEmptyPlaylist] and [shared.ErrNoCandidates];
// individual catalogue call failures inside the strategies are recovered as
// zero contribution.
func (e *Engine) Run(ctx context.Context, progress chan<- ProgressUpdate, playlistRef string, opts Options) (*Result, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: catalogue service not initialized", shared.ErrServiceUnavailable)
	}

	opts.normalize()
	playlistID := services.ExtractPlaylistID(playlistRef)

	e.sendProgress(progress, fetchInputUpdate())

	export, err := e.svc.ExportPlaylist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch input playlist %s: %v", shared.ErrPlaylistNotFound, playlistID, err)
	}
	if len(export.Tracks) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptyPlaylist, export.Playlist.Name)
	}

	e.sendProgress(progress, foundInputUpdate(export))

	input := NewInputSet(export.Tracks)

	var table *CandidateTable
	switch opts.Strategy {
	case StrategySample:
		table = e.runSample(ctx, progress, input, opts)
	default:
		table = e.runFunnel(ctx, progress, input, opts)
	}

	if table.Len() == 0 {
		return nil, shared.ErrNoCandidates
	}

	e.sendProgress(progress, rankUpdate(table.Len(), opts.Count))
	recommendations := table.TopK(opts.Count)

	result := &Result{
		Input:           export.Playlist,
		InputTracks:     len(export.Tracks),
		Recommendations: recommendations,
	}

	created, err := e.createOutput(ctx, progress, export.Playlist, opts.Name, recommendations)
	if err != nil {
		return result, err
	}

	result.Created = created
	return result, nil
}

// createOutput creates the recommendations playlist and fills it with the
// ranked tracks' playable references.
func (e *Engine) createOutput(ctx context.Context, progress chan<- ProgressUpdate, input models.Playlist, nameOverride string, recs []Recommendation) (*models.Playlist, error) {
	name := nameOverride
	if name == "" {
		name = fmt.Sprintf("Recommendations from %s", input.Name)
	}
	description := fmt.Sprintf(
		"Auto-generated recommendations based on '%s'. Songs that frequently appear alongside your favorites in public playlists.",
		input.Name,
	)

	e.sendProgress(progress, createUpdate(name))

	user, err := e.svc.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve current user: %v", shared.ErrAPIRequest, err)
	}

	created, err := e.svc.CreatePlaylist(ctx, user.ID, name, description, true)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create playlist: %v", shared.ErrAPIRequest, err)
	}

	uris := make([]string, 0, len(recs))
	for _, rec := range recs {
		uris = append(uris, rec.Track.URI)
	}

	if err := e.svc.AddTracks(ctx, created.ID, uris); err != nil {
		return created, fmt.Errorf("%w: failed to add tracks: %v", shared.ErrAPIRequest, err)
	}

	e.sendProgress(progress, createdUpdate(created))
	return created, nil
}
