// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Harvest Scope - these keys bound what the anime phase collects.
const (
	HarvestLimit = "harvest.limit"
	HarvestGenre = "harvest.genre"
)

// Character Enrichment - these keys configure the optional character phase.
const (
	CharactersInclude = "characters.include"
	CharactersLimit   = "characters.limit"
	CharactersDetails = "characters.details"
)

// Output Files - these keys locate the generated CSV datasets.
const (
	OutputAnime            = "output.anime"
	OutputCharacters       = "output.characters"
	OutputConfirmOverwrite = "output.confirm_overwrite"
)

// Jikan API Client - these keys tune transport, politeness and rate-limit recovery.
const (
	JikanBaseURL    = "jikan.base_url"
	JikanInterval   = "jikan.interval"
	JikanBackoff    = "jikan.backoff"
	JikanMaxRetries = "jikan.max_retries"
	JikanPageSize   = "jikan.page_size"
	JikanTimeout    = "jikan.timeout"
)

// Response Cache - these keys govern the on-disk cache of successful API responses.
const (
	CacheEnabled  = "cache.enabled"
	CacheLifetime = "cache.lifetime"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
	LogsKeep  = "logs.keep_days"
)

// CLI Execution Environment - these flags and settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
