package registry

import (
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
)

const (
	ProfileStock    = "stock"
	ProfileBiotech  = "biotech"
	ProfileCuration = "curation"
)

// TickerPlaceholder is replaced by the requested ticker in endpoints, titles
// and subjects.
const TickerPlaceholder = "{ticker}"

const day = 24 * time.Hour

func defaultProfiles() map[string]Profile {
	return map[string]Profile{
		ProfileStock: {
			Name:    ProfileStock,
			Title:   "{ticker} stock news",
			Subject: TickerPlaceholder,
			Sources: []domain.Source{
				{
					Name:     "Google News",
					Endpoint: "https://news.google.com/rss/search?q={ticker}+stock&hl=en-US&gl=US&ceid=US:en",
					Kind:     domain.KindRss,
				},
			},
			Order:   domain.OrderModeFixed,
			Windows: []time.Duration{day},
			Top:     3,
			Prompt:  summaryDomain.PromptKindStock,
		},
		ProfileBiotech: {
			Name:  ProfileBiotech,
			Title: "Biotech technology news",
			Sources: []domain.Source{
				{Name: "Fierce Biotech", Endpoint: "https://www.fiercebiotech.com/rss/biotech-news", Kind: domain.KindRss},
				{Name: "BioPharma Dive", Endpoint: "https://www.biopharmadive.com/feeds/news/", Kind: domain.KindRss},
				{Name: "Endpoints News", Endpoint: "https://endpts.com/feed", Kind: domain.KindRss},
				{Name: "BioSpace", Endpoint: "https://www.biospace.com/feed", Kind: domain.KindRss},
				{Name: "GEN", Endpoint: "https://www.genengnews.com/feed", Kind: domain.KindRss},
				{Name: "Nature Biotechnology", Endpoint: "https://www.nature.com/nbt.rss", Kind: domain.KindRss},
				{Name: "STAT News", Endpoint: "https://www.statnews.com/feed/", Kind: domain.KindRss},
			},
			Order:   domain.OrderModeRandom,
			Windows: []time.Duration{day, 2 * day},
			Top:     3,
			Prompt:  summaryDomain.PromptKindBiotech,
		},
		ProfileCuration: {
			Name:    ProfileCuration,
			Title:   "Ginkgo Bioworks expert digest",
			Subject: "Ginkgo Bioworks",
			Sources: []domain.Source{
				{
					Name:     "X experts",
					Endpoint: "https://api.twitter.com/2/tweets/search/recent",
					Kind:     domain.KindSocialSearch,
					Query: domain.Query{
						Keywords:   []string{"Ginkgo", "Ginkgo Bioworks", "DNA", "synbio"},
						Authors:    []string{"jasonjkelly", "andrewhessel", "robcarlson", "ARKInvest", "FierceBiotech"},
						MaxResults: 10,
					},
					MaxItems: 3,
				},
				{
					Name:     "Ginkgo Bioworks blog",
					Endpoint: "https://www.ginkgobioworks.com/feed/",
					Kind:     domain.KindRss,
					MaxItems: 3,
				},
				{
					Name:     "Ginkgo Bioworks investor relations",
					Endpoint: "https://investors.ginkgobioworks.com/news-releases",
					Kind:     domain.KindScrapedHtml,
					Selector: domain.Selector{
						Block:      "article.node--nir-news--nir-widget-list, .nir-widget--list article",
						Title:      ".nir-widget--field--title a, h3 a",
						Link:       ".nir-widget--field--title a, h3 a",
						Summary:    ".nir-widget--field--teaser",
						Date:       ".nir-widget--field--date, time",
						DateLayout: "January 2, 2006",
					},
					MaxItems: 3,
				},
			},
			Order:   domain.OrderModeFixed,
			Windows: []time.Duration{day, 7 * day},
			Top:     3,
			Prompt:  summaryDomain.PromptKindCuration,
		},
	}
}
