// Package config loads and validates docnav.json configuration.
//
// The configuration names where the sidebar manifest lives (a local file or
// an S3 object), where authored page content lives, and how the query
// service binds. Lookup walks up from the working directory so commands work
// from anywhere inside a docs checkout.
package config
