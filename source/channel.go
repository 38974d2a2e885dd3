package source

import "github.com/odyssey-club/aiosource/constant"

type Channel struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Banner      string `json:"banner"`
	Thumbnail   string `json:"thumbnail"`
}

// ClubChannel is the one channel this platform exposes.
func ClubChannel(url string) *Channel {
	if url == "" {
		url = constant.PlatformLink
	}

	return &Channel{
		ID:          NewID(constant.PlatformLink),
		Name:        constant.PlatformName,
		Description: constant.ChannelDescription,
		URL:         url,
		Banner:      constant.BannerURL,
		Thumbnail:   constant.LogoURL,
	}
}
