package aio

import (
	"github.com/odyssey-club/aiosource/access"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/normalize"
	"github.com/odyssey-club/aiosource/upstream"
	"github.com/spf13/viper"
)

// CommentPageSizes are the page sizes comments.page_size_index selects from.
var CommentPageSizes = []int{10, 20, 30, 40, 50}

const defaultCommentPageSize = 20

// Settings is the operator configuration of a Source.
type Settings struct {
	FetchRandomEpisode bool `json:"fetchRandomEpisode"`
	FasterRandom       bool `json:"fasterRandomMode"`
	IncludePodcasts    bool `json:"includePodcasts"`
	OverrideAccess     bool `json:"overrideAccessFlag"`

	CommentPageSizeIndex int `json:"commentPageSizeIndex"`
	GroupingTypeIndex    int `json:"groupingTypeIndex"`

	// FreeWindowDays of zero means access.DefaultWindowDays.
	FreeWindowDays int                    `json:"freeWindowDays"`
	Caps           normalize.Capabilities `json:"capabilities"`
	Debug          bool                   `json:"debug"`
}

// DefaultSettings mirrors the configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		CommentPageSizeIndex: 1,
		FreeWindowDays:       access.DefaultWindowDays,
		Caps:                 normalize.AllCapabilities(),
	}
}

// SettingsFromViper reads the current configuration.
func SettingsFromViper() Settings {
	return Settings{
		FetchRandomEpisode:   viper.GetBool(key.ContentFetchRandomEpisode),
		FasterRandom:         viper.GetBool(key.ContentFasterRandom),
		IncludePodcasts:      viper.GetBool(key.ContentIncludePodcasts),
		OverrideAccess:       viper.GetBool(key.ContentOverrideAccess),
		CommentPageSizeIndex: viper.GetInt(key.CommentsPageSizeIndex),
		GroupingTypeIndex:    viper.GetInt(key.ChannelGroupingTypeIndex),
		FreeWindowDays:       viper.GetInt(key.AccessFreeWindowDays),
		Caps: normalize.Capabilities{
			Badges:      viper.GetBool(key.CapabilitiesBadges),
			Themes:      viper.GetBool(key.CapabilitiesThemes),
			Podcasts:    viper.GetBool(key.CapabilitiesPodcasts),
			DirectMedia: viper.GetBool(key.CapabilitiesDirectMedia),
		},
		Debug: viper.GetBool(key.DebugDescription),
	}
}

// CommentPageSize resolves the index. Out-of-range indexes get the default.
func (s Settings) CommentPageSize() int {
	if s.CommentPageSizeIndex < 0 || s.CommentPageSizeIndex >= len(CommentPageSizes) {
		return defaultCommentPageSize
	}
	return CommentPageSizes[s.CommentPageSizeIndex]
}

// GroupingType resolves the index. Out-of-range indexes mean albums.
func (s Settings) GroupingType() string {
	if s.GroupingTypeIndex < 0 || s.GroupingTypeIndex >= len(upstream.GroupingTypes) {
		return upstream.GroupingAlbum
	}
	return upstream.GroupingTypes[s.GroupingTypeIndex]
}

func (s Settings) podcasts() bool {
	return s.IncludePodcasts && s.Caps.Podcasts
}
