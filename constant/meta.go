// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Pokedex is the canonical application identifier used for filesystem paths and CLI branding.
	Pokedex = "pokedex"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is sent with every catalog request.
	UserAgent = Pokedex + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
