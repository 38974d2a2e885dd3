// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Content retrieval - these keys govern detail fetches and the recommendation feed.
const (
	ContentFetchRandomEpisode = "content.fetch_random_episode"
	ContentFasterRandom       = "content.faster_random"
	ContentIncludePodcasts    = "content.include_podcasts"
	ContentOverrideAccess     = "content.override_access"
)

// Access gating for anonymous viewers.
const (
	AccessFreeWindowDays = "access.free_window_days"
)

// Listing shape.
const (
	CommentsPageSizeIndex    = "comments.page_size_index"
	ChannelGroupingTypeIndex = "channel.grouping_type_index"
)

// Capabilities - feature families that can be switched off individually.
const (
	CapabilitiesBadges      = "capabilities.badges"
	CapabilitiesThemes      = "capabilities.themes"
	CapabilitiesPodcasts    = "capabilities.podcasts"
	CapabilitiesDirectMedia = "capabilities.direct_media"
)

// Network transport.
const (
	NetworkTimeout        = "network.timeout"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Cache persistence - these keys control whether resolved identities survive the process.
const (
	CachePersist  = "cache.persist"
	CacheLifetime = "cache.lifetime"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

const (
	DebugDescription = "debug.description"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
