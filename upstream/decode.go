package upstream

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/odyssey-club/aiosource/network"
)

// Decode classifies a gateway outcome and unmarshals the body into v.
//
//   - transport error: KindUpstreamUnavailable
//   - 401: KindAuthRequired
//   - any other non-2xx: KindUpstreamUnavailable
//   - body that is not valid JSON for v: KindUpstreamUnavailable
func Decode(resp network.Response, err error, v any) error {
	if err != nil {
		return Wrap(KindUpstreamUnavailable, "request failed", err)
	}

	if resp.Status == http.StatusUnauthorized {
		return Errorf(KindAuthRequired, "auth token expired, login to fetch a new token")
	}

	if !resp.OK() {
		return Errorf(KindUpstreamUnavailable, "http error %d: %s", resp.Status, statusText(resp.Status))
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return Wrap(KindUpstreamUnavailable, "failed to parse json response", err)
	}

	return nil
}

func statusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", code)
}
