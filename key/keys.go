// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog - these keys control how creature records are fetched from the remote API.
const (
	CatalogLimit          = "catalog.limit"
	CatalogBaseURL        = "catalog.base_url"
	CatalogMaxParallel    = "catalog.max_parallel"
	CatalogCache          = "catalog.cache"
	CatalogTimeoutSeconds = "catalog.timeout_seconds"
)

// Rendering - these keys tune how cards and badges are drawn.
const (
	RenderCardWidth     = "render.card_width"
	RenderFallbackColor = "render.fallback_color"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIDefaultTab         = "tui.default_tab"
	TUISearchPromptString = "tui.search_prompt"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
