// Package recommend discovers and ranks song recommendations for a playlist
// by measuring co-occurrence with tracks in public playlists.
//
// # Core Operations
//
// [Engine.Run] drives the whole pipeline for one of two strategies:
//
//  1. [StrategyFunnel] : Two-phase hit-count funnel
//     - Phase 1 searches the catalogue once per input track and counts how
//       many distinct searches surfaced each playlist (the hit count)
//     - Phase 2 fetches only the top playlists by hit count and scores each
//       with the artist-diversity formula score = matches × artists²
//     - Candidate tracks accumulate the full score of every playlist that
//       contained them
//
//  2. [StrategySample] : Randomized sampling
//     - Samples a bounded number of input tracks without replacement
//     - Evaluates each newly discovered playlist immediately; candidates
//       accumulate one point per distinct playlist containing them
//
// Both strategies share the [CandidateTable], which is append/accumulate
// only: scores never decrease, first-seen track info is never overwritten,
// and input tracks never enter it.
//
// # Progress Reporting
//
// Operations emit [ProgressUpdate] values through a caller-supplied channel.
// Sends use select with default so a slow consumer never stalls the run.
//
// # Error Handling
//
// Per-call catalogue failures (one search, one playlist fetch) are recovered
// locally as zero contribution. Only three conditions are fatal: missing
// credentials (surfaced before the engine runs), [shared.ErrEmptyPlaylist],
// and [shared.ErrNoCandidates].
package recommend
