package constant

// Platform identity as presented to the host.
const (
	PlatformName = "Adventures In Odyssey Club"
	PlatformLink = "app.adventuresinodyssey.com"
	Experience   = "Adventures In Odyssey"

	// Community is the grouping/search community name. Note the lowercase "in".
	Community = "Adventures in Odyssey"
)

// Canonical URL prefixes for items produced by the normalizer.
const (
	AppURL        = "https://app.adventuresinodyssey.com"
	ContentURL    = AppURL + "/content/"
	GroupURL      = AppURL + "/contentGroup/"
	BadgeURL      = AppURL + "/badges/"
	ThemeURL      = AppURL + "/themes/"
	PlaylistURL   = AppURL + "/playlists/"
	VideoURL      = AppURL + "/video?"
	CastURL       = AppURL + "/cast/"
	CharactersURL = AppURL + "/characters/"

	// MediaURL prefixes signed direct-download links.
	MediaURL = "https://media.adventuresinodyssey.com/private/audio/"
)

// APIBase is the upstream REST root.
const APIBase = "https://fotf.my.site.com/aio/services/apexrest/v1"

// Channel artwork and copy.
const (
	BannerURL          = "https://www.adventuresinodyssey.com/wp-content/uploads/whits-end-adventures-in-odyssey.jpg"
	LogoURL            = AppURL + "/icons/Icon-167.png"
	RandomThumbnailURL = "https://d23sy43gbewnpt.cloudfront.net/public%2Fimages%2Fcontent_body%2Fmobile-random.jpeg"
	ChannelDescription = "Adventures in Odyssey is an award-winning, original audio drama series created for ages 8-12 and enjoyed by the whole family. They teach lasting truths and bring biblical principles to life, with just the right balance of fun, faith and imagination."
)

// SignedCookieContentID is a content record whose detail payload always carries a fresh signed_cookie.
const SignedCookieContentID = "a354W0000046V5fQAE"
