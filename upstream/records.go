package upstream

// Content types and subtypes recognized by the normalizer.
const (
	TypeAudio   = "Audio"
	TypeVideo   = "Video"
	TypeArticle = "Article"

	SubtypeEpisode = "Episode"
	SubtypePodcast = "Podcast"
)

// Grouping types, in the order the channel.grouping_type_index setting enumerates them.
var GroupingTypes = []string{"Album", "Playlist", "Series", "Collection", "Bonus Video Home", "Life Lesson"}

const (
	GroupingAlbum    = "Album"
	GroupingPlaylist = "Playlist"
)

// Search object names.
const (
	ObjectContent  = "Content__c"
	ObjectGrouping = "Content_Grouping__c"
	ObjectBadge    = "Badge__c"
)

// Content is a single audio, video or article record. Nested references
// (next episode, album siblings) reuse the same shape with fewer fields set.
type Content struct {
	ID       string `json:"id"`
	LinkToID string `json:"link_to_id"`
	Name     string `json:"name"`
	Short    string `json:"short_name"`
	Type     string `json:"type"`
	Subtype  string `json:"subtype"`

	Description string `json:"description"`
	Body        string `json:"content_body"`
	BibleVerse  string `json:"bible_verse"`
	Devotional  string `json:"devotional"`

	AirDate         string `json:"air_date"`
	LastPublished   string `json:"last_published_date"`
	RecentAirDate   string `json:"recent_air_date"`
	RelativeAirDay  string `json:"relative_air_day"`
	AlbumName       string `json:"album_name"`
	EpisodeNumber   Text   `json:"episode_number"`
	MediaLength     Number `json:"media_length"`
	Views           Number `json:"views"`
	Bookmarks       Number `json:"bookmarks"`
	RatingCount     Number `json:"rating_count"`
	RatingAverage   Number `json:"rating_average"`
	MediaFormat     string `json:"media_format"`
	ThumbnailSmall  string `json:"thumbnail_small"`
	ThumbnailMedium string `json:"thumbnail_medium"`
	DownloadURL     string `json:"download_url"`
	StreamURL       string `json:"stream_url"`
	SignedCookie    string `json:"signed_cookie"`

	Authors    []*Author    `json:"authors"`
	Characters []*Character `json:"characters"`
	Tags       []*Tag       `json:"tags"`

	NextEpisode     *Content    `json:"next_episode"`
	PreviousEpisode *Content    `json:"previous_episode"`
	InAlbum         ContentList `json:"in_album"`
	Extras          ContentList `json:"extras"`
	Recommendations ContentList `json:"recommendations"`
}

// DisplayName prefers the short name.
func (c *Content) DisplayName() string {
	if c.Short != "" {
		return c.Short
	}
	return c.Name
}

// Playable reports whether the record is audio or video.
func (c *Content) Playable() bool {
	return c != nil && (c.Type == TypeAudio || c.Type == TypeVideo)
}

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Character struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

type Tag struct {
	TopicID string `json:"topic_id"`
	Name    string `json:"name"`
}

// Metadata carries paging info for grouping and comment searches.
type Metadata struct {
	TotalPageCount Number `json:"totalPageCount"`
}

// Grouping is an album, playlist, series or collection.
type Grouping struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	AlbumName       string      `json:"album_name"`
	Type            string      `json:"type"`
	Description     string      `json:"description"`
	ImageURL        string      `json:"imageURL"`
	ThumbnailMedium string      `json:"thumbnail_medium"`
	CopyrightYear   Text        `json:"album_copyright_year"`
	ViewerID        string      `json:"viewer_id"`
	ContentList     ContentList `json:"contentList"`
}

type GroupingPage struct {
	ContentGroupings []*Grouping `json:"contentGroupings"`
	Metadata         Metadata    `json:"metadata"`
}

type Requirement struct {
	ContentToComplete *Content `json:"contentToComplete"`
}

type Badge struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"imageURL"`
	Icon            string         `json:"icon"`
	ThumbnailMedium string         `json:"thumbnail_medium"`
	CopyrightYear   Text           `json:"album_copyright_year"`
	Requirements    []*Requirement `json:"requirements"`
}

type Topic struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	ImageURL        string      `json:"imageURL"`
	ThumbnailMedium string      `json:"thumbnail_medium"`
	CopyrightYear   Text        `json:"album_copyright_year"`
	Recommendations ContentList `json:"recommendations"`
}

// ContentPage is the result of a content/search listing.
type ContentPage struct {
	Results    []*Content `json:"results"`
	TotalPages Number     `json:"total_pages"`
}

// Column is one projected field of a search hit.
type Column struct {
	Value Text `json:"value"`
}

// SearchHit columns follow the field order requested for its object:
// content hits carry name, thumbnail, subtype, episode number; groupings carry
// name, image, total runtime; badges carry name, icon, type.
type SearchHit struct {
	ID      string  `json:"id"`
	Column1 *Column `json:"column1"`
	Column2 *Column `json:"column2"`
	Column3 *Column `json:"column3"`
	Column4 *Column `json:"column4"`
}

// Col returns the value of column n (1-based), or "" when absent.
func (h *SearchHit) Col(n int) string {
	var c *Column
	switch n {
	case 1:
		c = h.Column1
	case 2:
		c = h.Column2
	case 3:
		c = h.Column3
	case 4:
		c = h.Column4
	}
	if c == nil {
		return ""
	}
	return c.Value.String()
}

type SearchSection struct {
	ObjectName string       `json:"objectName"`
	Results    []*SearchHit `json:"results"`
}

type SearchResponse struct {
	ResultObjects []*SearchSection `json:"resultObjects"`
}

// Section returns the hits for objectName.
func (r *SearchResponse) Section(objectName string) []*SearchHit {
	for _, s := range r.ResultObjects {
		if s != nil && s.ObjectName == objectName {
			return s.Results
		}
	}
	return nil
}

type Comment struct {
	ID              string     `json:"id"`
	Message         string     `json:"message"`
	UserName        string     `json:"userName"`
	ProfilePicture  string     `json:"userProfilePicture"`
	ViewerProfileID string     `json:"viewerProfileId"`
	Likes           Number     `json:"numberOfLikes"`
	Replies         Number     `json:"numberOfComments"`
	Created         Text       `json:"createdDateTimestamp"`
	Comments        []*Comment `json:"comments"`
}

type CommentPage struct {
	Comments []*Comment `json:"comments"`
	Metadata Metadata   `json:"metadata"`
}
