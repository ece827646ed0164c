// Package server provides HTTP routing and middleware for the beer tracker's web interface.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns, so "GET /beers/{id}/delete" and
// "POST /beers/{id}/delete" can be registered side by side.
//
// # Middleware
//
//   - [RequestID] assigns a uuid per request and echoes it in the X-Request-ID header
//   - [Logging] writes a charmbracelet/log line with method, path, status and duration
//   - [RateLimit] guards the form posts with a golang.org/x/time/rate token bucket, answering 429 when empty
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
// The web package's collection handler is registered this way.
package server
