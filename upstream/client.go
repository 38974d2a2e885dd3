// Package upstream speaks the club's REST API: it composes requests, sends them through
// a network.Gateway and decodes the responses into typed records.
package upstream

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/log"
	"github.com/odyssey-club/aiosource/network"
	"github.com/samber/lo"
)

// Client is safe for concurrent use if its Gateway is.
type Client struct {
	Gateway network.Gateway
	Base    string
}

// NewClient returns a Client rooted at constant.APIBase.
func NewClient(gateway network.Gateway) *Client {
	return &Client{Gateway: gateway, Base: constant.APIBase}
}

var headers = map[string]string{
	"Content-Type":      "application/json",
	"Accept":            "application/json",
	"x-experience-name": constant.Experience,
}

func (c *Client) get(path string, query url.Values, v any) error {
	u := c.Base + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	resp, err := c.Gateway.Get(u, headers)
	return Decode(resp, err, v)
}

func (c *Client) post(path string, payload, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", path, err)
	}

	resp, err := c.Gateway.Post(c.Base+"/"+path, body, headers)
	return Decode(resp, err, v)
}

// ContentQuery tunes a detail fetch.
type ContentQuery struct {
	// Aired restricts the record to what the public radio page exposes.
	Aired bool
	// GroupingID scopes next/previous episode links to a grouping.
	GroupingID string
}

// Content fetches one content record with its tags, series, recommendations, player and parent data.
func (c *Client) Content(id string, q ContentQuery) (*Content, error) {
	query := url.Values{}
	for _, k := range []string{"tag", "series", "recommendations", "player", "parent"} {
		query.Set(k, "true")
	}
	if q.Aired {
		query.Set("radio_page_type", "aired")
	}
	if q.GroupingID != "" {
		query.Set("content_grouping_id", q.GroupingID)
	}

	log.With(log.Fields{"content": id, "aired": q.Aired}).Debugf("fetching content")

	var content Content
	if err := c.get("content/"+url.PathEscape(id), query, &content); err != nil {
		return nil, fmt.Errorf("content %s: %w", id, err)
	}
	return &content, nil
}

// Random returns a server-chosen episode. Requires a session.
func (c *Client) Random() (*Content, error) {
	var content Content
	if err := c.get("content/random", nil, &content); err != nil {
		return nil, fmt.Errorf("random content: %w", err)
	}
	return &content, nil
}

// ContentSearch describes a content listing.
type ContentSearch struct {
	Type     string
	Subtype  string
	OrderBy  string
	Page     int
	PageSize int
	Aired    bool
	Player   bool
}

// Orderings used by channel listings.
const (
	OrderLastPublished = "Last_Published_Date__c DESC NULLS LAST"
	OrderRecentAir     = "Recent_Air_Date__c DESC"
)

// SearchContent lists content records for the community.
func (c *Client) SearchContent(s ContentSearch) (*ContentPage, error) {
	query := url.Values{}
	query.Set("community", constant.Experience)
	if s.Type != "" {
		query.Set("content_type", s.Type)
	}
	if s.Subtype != "" {
		query.Set("content_subtype", s.Subtype)
	}
	if s.OrderBy != "" {
		query.Set("orderby", s.OrderBy)
	}
	query.Set("pagenum", strconv.Itoa(max(s.Page, 1)))
	query.Set("pagecount", strconv.Itoa(s.PageSize))
	if s.Aired {
		query.Set("radio_page_type", "aired")
	}
	if s.Player {
		query.Set("player", "true")
	}

	var page ContentPage
	if err := c.get("content/search", query, &page); err != nil {
		return nil, fmt.Errorf("content search: %w", err)
	}
	return &page, nil
}

// GroupingQuery describes a grouping search.
type GroupingQuery struct {
	Community string `json:"community,omitempty"`
	Page      int    `json:"pageNumber"`
	PageSize  int    `json:"pageSize"`
	Type      string `json:"type"`
}

// Groupings searches albums, playlists and other grouping types.
func (c *Client) Groupings(q GroupingQuery) (*GroupingPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	var page GroupingPage
	if err := c.post("contentgrouping/search", q, &page); err != nil {
		return nil, fmt.Errorf("grouping search: %w", err)
	}
	page.ContentGroupings = lo.Compact(page.ContentGroupings)
	return &page, nil
}

// Grouping fetches one grouping with its content list.
func (c *Client) Grouping(id string) (*Grouping, error) {
	var resp struct {
		ContentGroupings []*Grouping `json:"contentGroupings"`
	}
	if err := c.get("contentgrouping/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("grouping %s: %w", id, err)
	}
	resp.ContentGroupings = lo.Compact(resp.ContentGroupings)
	if len(resp.ContentGroupings) == 0 {
		return nil, Errorf(KindNotFound, "grouping %s not found", id)
	}
	return resp.ContentGroupings[0], nil
}

// Badge fetches one badge with its requirements.
func (c *Client) Badge(id string) (*Badge, error) {
	var resp struct {
		Badges []*Badge `json:"badges"`
	}
	if err := c.get("badge/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("badge %s: %w", id, err)
	}
	if len(resp.Badges) == 0 {
		return nil, Errorf(KindNotFound, "badge %s not found", id)
	}
	return resp.Badges[0], nil
}

// Topic fetches one theme with its recommended content.
func (c *Client) Topic(id string) (*Topic, error) {
	var resp struct {
		Topics []*Topic `json:"topics"`
	}
	if err := c.get("topic/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("topic %s: %w", id, err)
	}
	if len(resp.Topics) == 0 {
		return nil, Errorf(KindNotFound, "topic %s not found", id)
	}
	return resp.Topics[0], nil
}

// SearchObject selects one collection to search and the fields to project into columns.
type SearchObject struct {
	ObjectName string   `json:"objectName"`
	Page       int      `json:"pageNumber"`
	PageSize   int      `json:"pageSize"`
	Fields     []string `json:"fields"`
}

// ContentObject projects name, thumbnail, subtype and episode number.
func ContentObject(pageSize int) SearchObject {
	return SearchObject{ObjectContent, 1, pageSize, []string{"Name", "Thumbnail_Small__c", "Subtype__c", "Episode_Number__c"}}
}

// GroupingObject projects name, image and total runtime.
func GroupingObject(pageSize int) SearchObject {
	return SearchObject{ObjectGrouping, 1, pageSize, []string{"Name", "Image_URL__c", "total_runtime__c"}}
}

// BadgeObject projects name, icon and type.
func BadgeObject(pageSize int) SearchObject {
	return SearchObject{ObjectBadge, 1, pageSize, []string{"Name", "Icon__c", "Type__c"}}
}

// SearchQuery is a full-text search over one or more collections.
type SearchQuery struct {
	Term    string         `json:"searchTerm"`
	Objects []SearchObject `json:"searchObjects"`
}

// Search runs a full-text search.
func (c *Client) Search(q SearchQuery) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.post("search", q, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Term, err)
	}
	resp.ResultObjects = lo.Compact(resp.ResultObjects)
	return &resp, nil
}

// CommentQuery lists comments anchored to a thread, newest first.
type CommentQuery struct {
	OrderBy   string `json:"orderBy"`
	PageSize  int    `json:"pageSize"`
	Page      int    `json:"pageNumber"`
	RelatedTo string `json:"relatedToId"`
}

// Comments fetches one page of a comment thread.
func (c *Client) Comments(q CommentQuery) (*CommentPage, error) {
	if q.OrderBy == "" {
		q.OrderBy = "CreatedDate DESC"
	}
	if q.Page < 1 {
		q.Page = 1
	}

	var page CommentPage
	if err := c.post("comment/search", q, &page); err != nil {
		return nil, fmt.Errorf("comments of %s: %w", q.RelatedTo, err)
	}
	return &page, nil
}
