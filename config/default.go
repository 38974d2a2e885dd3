// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ContentFetchRandomEpisode, false, "Prepend a random episode to the recommendations of every content item")
	register(key.ContentFasterRandom, false, "Pick the random episode from the cached album pool instead of asking the server.\nOnly applies when logged in")
	register(key.ContentIncludePodcasts, false, "Include podcast episodes in channel listings")
	register(key.ContentOverrideAccess, false, "Skip the login requirement for episodes outside the free window")
	register(key.AccessFreeWindowDays, 7, "Number of days, inclusive, an aired episode stays free for anonymous listeners")
	register(key.CommentsPageSizeIndex, 1, "Comment page size.\nAvailable options are: 0 (10), 1 (20), 2 (30), 3 (40), 4 (50)")
	register(key.ChannelGroupingTypeIndex, 0, "Grouping type listed as channel playlists.\nAvailable options are: 0 (Album), 1 (Playlist), 2 (Series), 3 (Collection), 4 (Bonus Video Home), 5 (Life Lesson)")
	register(key.CapabilitiesBadges, true, "Resolve badge URLs and badge search results")
	register(key.CapabilitiesThemes, true, "Resolve theme URLs")
	register(key.CapabilitiesPodcasts, true, "Allow podcast content")
	register(key.CapabilitiesDirectMedia, true, "Accept signed direct media URLs")
	register(key.NetworkTimeout, 60, "HTTP timeout in seconds")
	register(key.NetworkTLSFingerprint, false, "Use a browser TLS fingerprint for upstream requests")
	register(key.CachePersist, true, "Persist resolved comment threads and the episode pool between runs")
	register(key.CacheLifetime, "168h", "How long persisted cache entries stay valid.\nUses Go duration syntax, e.g. 24h")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.DebugDescription, false, "Append raw upstream fields to content descriptions")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Check for a newer release when printing help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
