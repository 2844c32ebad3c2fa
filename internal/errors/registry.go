package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (N001-N019)
	// ============================================

	"N001": {
		Category: CategoryValidation,
		Message:  "Duplicate page path in manifest",
		Detail:   "Two entries in the sidebar manifest resolve to the same path. Paths are compared after canonicalization, so /learn and /learn/ collide.",
		DocURL:   "https://docnav.dev/docs/errors/N001",
	},
	"N002": {
		Category: CategoryValidation,
		Message:  "Section header carries a path",
		Detail:   "Section headers are non-navigable dividers. An entry with hasSectionHeader must not declare a path.",
		DocURL:   "https://docnav.dev/docs/errors/N002",
	},
	"N003": {
		Category: CategoryValidation,
		Message:  "Entry missing required field",
		Detail:   "Content and grouping entries require a title; section headers require sectionHeader label text.",
		DocURL:   "https://docnav.dev/docs/errors/N003",
	},
	"N004": {
		Category: CategoryValidation,
		Message:  "Invalid page path",
		Detail:   "The path was rejected by canonicalization. Paths must be site-absolute and must not contain backslashes, NUL bytes, bad percent-escapes, or .. escaping the root.",
		DocURL:   "https://docnav.dev/docs/errors/N004",
	},

	// ============================================
	// Manifest Errors (N020-N039)
	// ============================================

	"N020": {
		Category: CategoryManifest,
		Message:  "Manifest unreadable",
		Detail:   "The sidebar manifest could not be fetched from its source.",
		DocURL:   "https://docnav.dev/docs/errors/N020",
	},
	"N021": {
		Category: CategoryManifest,
		Message:  "Manifest is not valid JSON",
		Detail:   "The sidebar manifest must be a JSON array of entries or a single root entry object.",
		DocURL:   "https://docnav.dev/docs/errors/N021",
	},

	// ============================================
	// Config Errors (N040-N059)
	// ============================================

	"N040": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No docnav.json was found in the working directory or its parents.",
		DocURL:   "https://docnav.dev/docs/errors/N040",
	},
	"N041": {
		Category: CategoryConfig,
		Message:  "Configuration file is invalid",
		Detail:   "docnav.json exists but could not be parsed.",
		DocURL:   "https://docnav.dev/docs/errors/N041",
	},
	"N042": {
		Category: CategoryConfig,
		Message:  "Missing manifest location",
		Detail:   "The configuration names neither a manifest file nor an S3 object to load the sidebar from.",
		DocURL:   "https://docnav.dev/docs/errors/N042",
	},

	// ============================================
	// CLI Errors (N060-N079)
	// ============================================

	"N060": {
		Category: CategoryCLI,
		Message:  "Unresolved cross-references",
		Detail:   "One or more authored links do not resolve against the navigation index.",
		DocURL:   "https://docnav.dev/docs/errors/N060",
	},
}

// Register adds a custom error template. Intended for embedding docnav in a
// larger toolchain with its own codes.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
