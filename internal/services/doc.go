// Package services defines the [Service] interface for the music catalogue
// and implements it for Spotify.
//
// # Service Interface
//
// The recommendation engine only ever talks to the catalogue through
// [Service], so tests and alternative providers can swap in their own
// implementation.
//
// # Spotify Implementation
//
// [SpotifyService] uses OAuth2 for authentication with automatic token
// refresh via the [oauth2] client. All requests pass through a shared
// [rate.Limiter] so burst-heavy phases (one search per input track, one
// fetch per candidate playlist) stay inside the Web API rate limits.
//
// # OAuth Service Extension
//
// The [OAuthService] interface extends [Service] for providers whose
// authorization runs through a browser flow with a local callback server.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrTokenExpired] : OAuth token expired, reauthorization needed
//   - [shared.ErrAPIRequest] : HTTP request failed
//
// [SpotifyService.SearchPlaylists] is deliberately lossy: service-side search
// failures degrade to an empty result so one bad query never aborts a run.
package services
