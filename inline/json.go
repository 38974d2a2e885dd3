package inline

import (
	"encoding/json"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/odyssey-club/aiosource/pager"
	"github.com/odyssey-club/aiosource/source"
)

// Output is the structured result of one command.
type Output struct {
	Operation   string               `json:"operation"`
	Query       string               `json:"query,omitempty"`
	Channel     *source.Channel      `json:"channel,omitempty"`
	Content     *source.ContentItem  `json:"content,omitempty"`
	Playlist    *source.PlaylistItem `json:"playlist,omitempty"`
	Page        *pager.Page          `json:"page,omitempty"`
	Suggestions []string             `json:"suggestions,omitempty"`

	// Next is the encoded token that continues Page. Empty when nothing follows.
	Next string `json:"next,omitempty"`
}

func writeJson(out io.Writer, o *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(o)
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "id", "kind", "token", "page", "output":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Output{})
}
