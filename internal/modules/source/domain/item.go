package domain

import (
	"strings"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
)

// RawEntry is one entry as exposed by a feed, page or search response,
// before normalization.
type RawEntry struct {
	Title   string
	Summary string
	Link    string
	// Publisher names the outlet behind the entry when the feed says so.
	Publisher  string
	Published  *time.Time
	Author     string
	AuthorName string
	Likes      int
	Reposts    int
}

// Item is the normalized record handed to summarizers, relays and feeds.
type Item struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Link        string    `json:"link"`
	Publisher   string    `json:"publisher"`
	Author      string    `json:"author,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	// DatedBySource is false when PublishedAt was defaulted to the fetch time.
	DatedBySource bool `json:"dated_by_source"`
	Likes         int  `json:"likes,omitempty"`
	Reposts       int  `json:"reposts,omitempty"`
}

// NewItem normalizes a raw entry. An entry without a title is rejected.
// A missing publish time resolves to fetchedAt and a missing publisher to
// the given source publisher.
func NewItem(raw RawEntry, publisher string, fetchedAt time.Time) (Item, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return Item{}, errors.ErrEmptyTitle
	}

	if p := strings.TrimSpace(raw.Publisher); p != "" {
		publisher = p
	}

	item := Item{
		Title:       title,
		Summary:     strings.TrimSpace(raw.Summary),
		Link:        strings.TrimSpace(raw.Link),
		Publisher:   publisher,
		Author:      raw.Author,
		AuthorName:  raw.AuthorName,
		PublishedAt: fetchedAt,
		Likes:       raw.Likes,
		Reposts:     raw.Reposts,
	}
	if raw.Published != nil && !raw.Published.IsZero() {
		item.PublishedAt = *raw.Published
		item.DatedBySource = true
	}

	return item, nil
}

// Engagement is the sum of likes and reposts.
func (i Item) Engagement() int {
	return i.Likes + i.Reposts
}
