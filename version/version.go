// Package version compares release versions and looks up the latest one.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/odyssey-club/aiosource/filesystem"
	"github.com/odyssey-club/aiosource/network"
	"github.com/odyssey-club/aiosource/where"
)

// ReleasesURL answers with the latest published release.
const ReleasesURL = "https://api.github.com/repos/odyssey-club/aiosource/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the "v" prefix.
// Answers are cached for two days.
func Latest() (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}
	if !expired && ver != "" {
		return ver, nil
	}

	ver, err = fetchLatest(network.NewGateway(nil, nil), ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(ver)
	return ver, nil
}

func fetchLatest(gateway network.Gateway, url string) (string, error) {
	resp, err := gateway.Get(url, map[string]string{"Accept": "application/vnd.github+json"})
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("latest release: status %d", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(resp.Body, &release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
