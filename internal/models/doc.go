// Package models defines the domain entities shared across the recommender.
//
// All types are plain value structs mapped from catalogue API responses:
//   - [Track] : Song metadata with catalogue ID, playable URI, and ordered artist list
//   - [Playlist] : Basic playlist metadata including the shareable URL
//   - [PlaylistExport] : Playlist with its complete track listing
//   - [User] : The authenticated catalogue user, needed for playlist creation
//
// Tracks are immutable once fetched; the recommendation engine only ever
// copies them into its candidate table, never mutates them.
package models
