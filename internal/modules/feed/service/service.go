package service

import (
	"fmt"
	"html"
	"time"

	"github.com/gorilla/feeds"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/registry"
	"github.com/samber/lo"
)

// Service renders aggregated items as syndication feeds
type Service struct {
	now func() time.Time
}

// New creates a new feed service
func New() *Service {
	return &Service{now: time.Now}
}

// GenerateFeed builds the digest feed of a profile from one aggregation pass.
func (s *Service) GenerateFeed(profile registry.Profile, report sourceDomain.Report, baseURL string) *feeds.Feed {
	description := fmt.Sprintf("Fresh items for %s", profile.Title)
	if !report.Empty() {
		description = fmt.Sprintf("Fresh items for %s from %s within %s", profile.Title, report.Source.Name, report.Lookback)
	}

	return &feeds.Feed{
		Title:       fmt.Sprintf("%s - Digest", profile.Title),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/rss/%s", baseURL, profile.Name)},
		Description: description,
		Created:     s.now(),
		Items: lo.Map(report.Items, func(item sourceDomain.Item, _ int) *feeds.Item {
			return itemToFeedItem(item)
		}),
	}
}

func itemToFeedItem(item sourceDomain.Item) *feeds.Item {
	description := item.Summary
	if description == "" {
		description = "No summary available"
	}

	content := fmt.Sprintf("<p>%s</p>", html.EscapeString(description))
	if item.Author != "" {
		content += fmt.Sprintf("<p><strong>%s</strong></p>", html.EscapeString(item.Author))
	}

	feedItem := &feeds.Item{
		Title:       truncate(item.Title, 100),
		Link:        &feeds.Link{Href: item.Link},
		Description: description,
		Content:     content,
		Author:      &feeds.Author{Name: lo.CoalesceOrEmpty(item.AuthorName, item.Publisher)},
		Created:     item.PublishedAt,
		Id:          lo.CoalesceOrEmpty(item.Link, fmt.Sprintf("%s-%d", item.Publisher, item.PublishedAt.Unix())),
	}
	return feedItem
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
