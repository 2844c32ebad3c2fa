// Package service exposes a navigation index over HTTP.
//
// The service holds the current index in an atomic snapshot holder: queries
// read whichever index was current when they started, and manifest rebuilds
// swap in a fresh index without blocking readers. Endpoints cover the four
// index operations (lookup, flatten, breadcrumb, neighbors), the sidebar
// display list, page content passthrough, health, Prometheus metrics, and a
// WebSocket channel that notifies connected docs frontends when the index
// has been rebuilt.
package service
