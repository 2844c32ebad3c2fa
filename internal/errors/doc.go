// Package errors provides structured, actionable error messages for docnav.
//
// Each coded error carries a category, a plain-language message, optional
// detail, and a documentation link, and formats itself for terminal output
// at the CLI boundary.
//
// # Error Categories
//
// Errors are organized into categories:
//   - manifest: the sidebar manifest is unreadable or undecodable
//   - validation: the manifest decodes but violates a structural invariant
//   - config: docnav.json problems
//   - cli: command usage errors
//
// # Error Codes
//
// Each registered error has a unique code (e.g., "N001") mapping to a
// message, detail, and doc URL. Plain errors are adopted into a code with
// FromError at the boundary that classifies them.
package errors
