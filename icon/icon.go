// Package icon renders status and item markers in the configured variant.
//
// Icons can be displayed as emoji, nerd-font glyphs or plain ASCII.
package icon

import (
	"github.com/odyssey-club/aiosource/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every accepted icons.variant value.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the rendered string for i. Unknown icons and variants render as "".
func Get(i Icon) string {
	return icons[i].Get()
}
