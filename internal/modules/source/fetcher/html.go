package fetcher

import (
	"context"
	"strings"

	"github.com/gocolly/colly/v2"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/oops"
)

const maxScrapedSummaryRunes = 200

// HTMLFetcher scrapes repeating content blocks out of an HTML page. The page
// structure is described per source by its Selector, so a layout change on
// one site only touches that source's configuration.
type HTMLFetcher struct {
	opts Options
}

// NewHTMLFetcher creates a new page scraper
func NewHTMLFetcher(opts Options) *HTMLFetcher {
	return &HTMLFetcher{opts: opts.withDefaults()}
}

func (f *HTMLFetcher) Fetch(ctx context.Context, source domain.Source) domain.FetchResult {
	result := domain.FetchResult{Source: source}
	sel := source.Selector
	if sel.Block == "" {
		result.Err = oops.With("source", source.Name).Errorf("no block selector configured")
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Err = oops.With("source", source.Name).Wrap(err)
		return result
	}

	fetchedAt := f.opts.Now()

	c := colly.NewCollector(
		colly.UserAgent(f.opts.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.opts.Timeout)
	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	var entries []domain.RawEntry
	c.OnHTML(sel.Block, func(e *colly.HTMLElement) {
		entries = append(entries, extractBlock(e, sel))
	})

	if err := c.Visit(source.Endpoint); err != nil {
		result.Err = oops.With("source", source.Name, "endpoint", source.Endpoint).Wrapf(err, "scraping page")
		return result
	}

	if len(entries) == 0 {
		result.Err = oops.With("source", source.Name, "selector", sel.Block).Wrap(errors.ErrSelectorMiss)
		return result
	}

	result.Items = normalize(entries, source, fetchedAt)
	return result
}

func extractBlock(e *colly.HTMLElement, sel domain.Selector) domain.RawEntry {
	raw := domain.RawEntry{}

	if sel.Title != "" {
		raw.Title = strings.TrimSpace(e.ChildText(sel.Title))
	} else {
		raw.Title = strings.TrimSpace(e.Text)
	}

	linkSel := sel.Link
	if linkSel == "" {
		linkSel = "a"
	}
	if href := strings.TrimSpace(e.ChildAttr(linkSel, "href")); href != "" {
		raw.Link = e.Request.AbsoluteURL(href)
	}

	if sel.Summary != "" {
		raw.Summary = truncateRunes(plainText(e.ChildText(sel.Summary)), maxScrapedSummaryRunes)
	}

	// Best effort: pages that fail to parse leave Published unset and the
	// item is dated at fetch time.
	if sel.Date != "" {
		value := e.ChildAttr(sel.Date, "datetime")
		if value == "" {
			value = e.ChildText(sel.Date)
		}
		if t, ok := parseDate(value, sel.DateLayout); ok {
			raw.Published = &t
		}
	}

	return raw
}
