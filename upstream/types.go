package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/samber/lo"
)

var null = []byte("null")

// Text accepts a JSON string, number or bool and keeps its textual form.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Number accepts a JSON number or a numeric string. Anything unparseable becomes 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}

	*n = ParseNumber(t.String())
	return nil
}

// ParseNumber reads a numeric string, returning 0 when it is not a number.
func ParseNumber(s string) Number {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Number(f)
}

func (n Number) Int() int {
	return int(n)
}

func (n Number) Int64() int64 {
	return int64(n)
}

// ContentList is delivered either as a bare array or wrapped as {"content_list": [...]}.
type ContentList []*Content

func (l *ContentList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var items []*Content
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = lo.Compact(items)
		return nil
	}

	var wrapped struct {
		ContentList []*Content `json:"content_list"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*l = lo.Compact(wrapped.ContentList)
	return nil
}
