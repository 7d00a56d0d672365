package registry

import (
	"testing"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"biotech", "curation", "stock"}, r.Names())

	biotech, err := r.Profile("biotech")
	require.NoError(t, err)
	assert.Len(t, biotech.Sources, 7)
	assert.Equal(t, domain.OrderModeRandom, biotech.Order)
	assert.Equal(t, []time.Duration{24 * time.Hour, 48 * time.Hour}, biotech.Windows)

	curation, err := r.Profile("Curation")
	require.NoError(t, err)
	kinds := []domain.Kind{curation.Sources[0].Kind, curation.Sources[1].Kind, curation.Sources[2].Kind}
	assert.Equal(t, []domain.Kind{domain.KindSocialSearch, domain.KindRss, domain.KindScrapedHtml}, kinds)
	assert.Equal(t, 168*time.Hour, curation.Windows[1])
}

func TestProfileNotFound(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	_, err = r.Profile("weather")
	assert.ErrorIs(t, err, errors.ErrProfileNotFound)
}

func TestProfileReturnsCopy(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	p, err := r.Profile("biotech")
	require.NoError(t, err)
	p.Sources[0].Name = "mutated"

	again, err := r.Profile("biotech")
	require.NoError(t, err)
	assert.Equal(t, "Fierce Biotech", again.Sources[0].Name)
}

func TestWithTicker(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	p, err := r.Profile("stock")
	require.NoError(t, err)

	tsla := p.WithTicker("tsla")
	assert.Equal(t, "TSLA stock news", tsla.Title)
	assert.Equal(t, "TSLA", tsla.Subject)
	assert.Equal(t, "https://news.google.com/rss/search?q=TSLA+stock&hl=en-US&gl=US&ceid=US:en", tsla.Sources[0].Endpoint)
	assert.Contains(t, p.Sources[0].Endpoint, TickerPlaceholder)

	assert.Equal(t, p, p.WithTicker(" "))
}

func TestOverrides(t *testing.T) {
	r, err := New(map[string]config.ProfileConfig{
		"biotech": {Top: 5, Order: domain.OrderModeFixed},
		"Synbio": {
			Sources: []domain.Source{{Name: "SynBioBeta", Endpoint: "https://synbiobeta.com/feed", Kind: domain.KindRss}},
			Windows: []time.Duration{12 * time.Hour},
			Prompt:  summaryDomain.PromptKindBiotech,
		},
	})
	require.NoError(t, err)

	biotech, err := r.Profile("biotech")
	require.NoError(t, err)
	assert.Equal(t, 5, biotech.Top)
	assert.Equal(t, domain.OrderModeFixed, biotech.Order)
	assert.Len(t, biotech.Sources, 7)

	synbio, err := r.Profile("synbio")
	require.NoError(t, err)
	assert.Equal(t, "synbio", synbio.Title)
	assert.Equal(t, summaryDomain.DefaultTop, synbio.Top)
	assert.Equal(t, domain.OrderModeFixed, synbio.Order)
	assert.Equal(t, []time.Duration{12 * time.Hour}, synbio.Windows)
}

func TestOverridesAreValidated(t *testing.T) {
	tests := map[string]config.ProfileConfig{
		"no sources": {Prompt: summaryDomain.PromptKindBiotech},
		"no prompt": {
			Sources: []domain.Source{{Name: "a", Endpoint: "https://a", Kind: domain.KindRss}},
		},
		"bad kind": {
			Sources: []domain.Source{{Name: "a", Endpoint: "https://a", Kind: "gopher"}},
			Prompt:  summaryDomain.PromptKindBiotech,
		},
		"scrape without selector": {
			Sources: []domain.Source{{Name: "a", Endpoint: "https://a", Kind: domain.KindScrapedHtml}},
			Prompt:  summaryDomain.PromptKindBiotech,
		},
	}

	for name, override := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(map[string]config.ProfileConfig{"custom": override})
			assert.Error(t, err)
		})
	}
}
