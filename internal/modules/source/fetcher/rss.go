package fetcher

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/rss"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// UntitledTitle stands in for feed entries that carry no title.
const UntitledTitle = "(untitled)"

// sourceElementKey is where the RSS <source> title is kept on a translated item.
const sourceElementKey = "source"

// sourceTranslator keeps the RSS <source> element, which names the outlet
// behind aggregator feeds such as Google News.
type sourceTranslator struct {
	gofeed.DefaultRSSTranslator
}

func (t *sourceTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	out, err := t.DefaultRSSTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}
	rssFeed, ok := feed.(*rss.Feed)
	if !ok || len(rssFeed.Items) != len(out.Items) {
		return out, nil
	}
	for i, item := range rssFeed.Items {
		if item.Source == nil || strings.TrimSpace(item.Source.Title) == "" {
			continue
		}
		if out.Items[i].Custom == nil {
			out.Items[i].Custom = map[string]string{}
		}
		out.Items[i].Custom[sourceElementKey] = strings.TrimSpace(item.Source.Title)
	}
	return out, nil
}

// RSSFetcher fetches RSS and Atom feeds
type RSSFetcher struct {
	opts   Options
	parser *gofeed.Parser
}

// NewRSSFetcher creates a new RSS/Atom fetcher
func NewRSSFetcher(opts Options) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.RSSTranslator = &sourceTranslator{}
	return &RSSFetcher{
		opts:   opts.withDefaults(),
		parser: parser,
	}
}

func (f *RSSFetcher) Fetch(ctx context.Context, source domain.Source) domain.FetchResult {
	result := domain.FetchResult{Source: source}
	fetchedAt := f.opts.Now()

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.Endpoint, nil)
	if err != nil {
		result.Err = oops.With("source", source.Name, "endpoint", source.Endpoint).Wrapf(err, "creating request")
		return result
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := f.opts.HTTPClient.Do(req)
	if err != nil {
		result.Err = oops.With("source", source.Name).Wrapf(err, "fetching feed")
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Err = oops.With("source", source.Name, "status", resp.StatusCode).Wrap(errors.ErrUnexpectedStatus)
		return result
	}

	feed, err := f.parser.Parse(resp.Body)
	if err != nil {
		result.Err = oops.With("source", source.Name).Wrapf(err, "parsing feed")
		return result
	}
	if len(feed.Items) == 0 {
		result.Err = oops.With("source", source.Name).Wrap(errors.ErrEmptyFeed)
		return result
	}

	entries := lo.Map(feed.Items, func(entry *gofeed.Item, _ int) domain.RawEntry {
		return rawFromFeedItem(entry)
	})
	result.Items = normalize(entries, source, fetchedAt)
	return result
}

func rawFromFeedItem(entry *gofeed.Item) domain.RawEntry {
	summary := entry.Description
	if summary == "" {
		summary = entry.Content
	}

	raw := domain.RawEntry{
		Title:     entry.Title,
		Summary:   truncateRunes(plainText(summary), maxSummaryRunes),
		Link:      entry.Link,
		Publisher: entry.Custom[sourceElementKey],
	}
	if strings.TrimSpace(raw.Title) == "" {
		raw.Title = UntitledTitle
	}

	switch {
	case entry.PublishedParsed != nil:
		raw.Published = entry.PublishedParsed
	case entry.UpdatedParsed != nil:
		raw.Published = entry.UpdatedParsed
	}

	if entry.Author != nil {
		raw.AuthorName = entry.Author.Name
	}

	return raw
}
