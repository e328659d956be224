// Package middleware provides HTTP middleware for the Source API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: one structured log line per request
//   - Recovery: turns panics into a JSON 500
//   - CORS: origin allow-list from configuration
//   - Compress: gzip for clients that accept it
//
// Compose them with Chain; the first middleware listed is outermost:
//
//	h := middleware.Chain(mux, middleware.RequestID, middleware.Logger, middleware.Recovery)
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
