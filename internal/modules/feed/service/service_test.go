package service

import (
	"testing"
	"time"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFeed(t *testing.T) {
	published := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	s := &Service{now: func() time.Time { return published.Add(time.Hour) }}

	report := sourceDomain.Report{
		Source:   sourceDomain.Source{Name: "Fierce Biotech"},
		Lookback: 24 * time.Hour,
		Items: []sourceDomain.Item{
			{Title: "Gene therapy <milestone>", Summary: "Results & more", Link: "https://fb.example.com/1", Publisher: "Fierce Biotech", PublishedAt: published},
			{Title: "Big partnership", Author: "@jasonjkelly", AuthorName: "Jason Kelly", Publisher: "X experts", PublishedAt: published},
		},
	}

	feed := s.GenerateFeed(registry.Profile{Name: "biotech", Title: "Biotech technology news"}, report, "http://localhost:8080")

	assert.Equal(t, "Biotech technology news - Digest", feed.Title)
	assert.Equal(t, "http://localhost:8080/rss/biotech", feed.Link.Href)
	assert.Contains(t, feed.Description, "Fierce Biotech")
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "<p>Results &amp; more</p>", first.Content)
	assert.Equal(t, "Fierce Biotech", first.Author.Name)
	assert.Equal(t, "https://fb.example.com/1", first.Id)
	assert.True(t, first.Created.Equal(published))

	second := feed.Items[1]
	assert.Equal(t, "No summary available", second.Description)
	assert.Equal(t, "Jason Kelly", second.Author.Name)
	assert.Contains(t, second.Content, "@jasonjkelly")
	assert.NotEmpty(t, second.Id)

	rss, err := feed.ToRss()
	require.NoError(t, err)
	assert.Contains(t, rss, "Gene therapy &lt;milestone&gt;")
}

func TestGenerateFeedEmptyReport(t *testing.T) {
	feed := New().GenerateFeed(registry.Profile{Name: "stock", Title: "DNA stock news"}, sourceDomain.Report{}, "")
	assert.Empty(t, feed.Items)

	_, err := feed.ToAtom()
	assert.NoError(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "깅코바...", truncate("깅코바이오웍스", 3))
}
