package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newsItems(titles ...string) []sourceDomain.Item {
	items := make([]sourceDomain.Item, 0, len(titles))
	for _, t := range titles {
		items = append(items, sourceDomain.Item{
			Title:       t,
			Summary:     t + " summary",
			Link:        "https://news.example.com/" + t,
			Publisher:   "Example News",
			PublishedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		})
	}
	return items
}

func TestRenderPromptUsesTopItems(t *testing.T) {
	prompt, err := RenderPrompt(domain.Request{
		Kind:    domain.PromptKindStock,
		Subject: "DNA",
		Items:   newsItems("a", "b", "c", "d"),
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "1. a (Source: Example News)")
	assert.Contains(t, prompt, "3. c (Source: Example News)")
	assert.NotContains(t, prompt, "4. d")
	assert.Contains(t, prompt, "#DNA")
}

func TestRenderPromptCurationDependsOnSourceKind(t *testing.T) {
	posts := []sourceDomain.Item{{
		Title: "Exciting partnership", Summary: "Exciting partnership",
		Author: "@jasonjkelly", AuthorName: "Jason Kelly", Likes: 150, Reposts: 45,
	}}

	prompt, err := RenderPrompt(domain.Request{
		Kind: domain.PromptKindCuration, Subject: "Ginkgo Bioworks",
		Items: posts, SourceKind: sourceDomain.KindSocialSearch,
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "@jasonjkelly (Jason Kelly)")
	assert.Contains(t, prompt, "likes: 150, reposts: 45")

	prompt, err = RenderPrompt(domain.Request{
		Kind: domain.PromptKindCuration, Subject: "Ginkgo Bioworks",
		Items: newsItems("post"), SourceKind: sourceDomain.KindRss,
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Link: https://news.example.com/post")
}

func TestRenderPromptUnknownKind(t *testing.T) {
	_, err := RenderPrompt(domain.Request{Kind: "poetry", Items: newsItems("a")})
	assert.ErrorIs(t, err, errors.ErrUnsupportedKind)
}

func TestSummarizeCallsGenerateContent(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt = req.Contents[0].Parts[0].Text

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  DNA 주가 급등 🚀  "}]}}]}`))
	}))
	defer ts.Close()

	s := New("secret", "gemini-test", ts.URL)
	summary, err := s.Summarize(context.Background(), domain.Request{
		Kind: domain.PromptKindBiotech, Items: newsItems("crispr"),
	})

	require.NoError(t, err)
	assert.Equal(t, "DNA 주가 급등 🚀", summary)
	assert.Equal(t, "/gemini-test:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Contains(t, gotPrompt, "Title: crispr")
	assert.False(t, domain.IsFailure(summary))
}

func TestSummarizeFailureCarriesErrorMarker(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	summary, err := New("secret", "", ts.URL).Summarize(context.Background(), domain.Request{
		Kind: domain.PromptKindStock, Subject: "DNA", Items: newsItems("a"),
	})

	assert.ErrorIs(t, err, errors.ErrSummaryFailed)
	assert.ErrorIs(t, err, errors.ErrUnexpectedStatus)
	assert.True(t, domain.IsFailure(summary))
}

func TestSummarizeEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	summary, err := New("secret", "", ts.URL).Summarize(context.Background(), domain.Request{
		Kind: domain.PromptKindStock, Items: newsItems("a"),
	})
	assert.ErrorIs(t, err, errors.ErrEmptySummary)
	assert.True(t, domain.IsFailure(summary))
}

func TestSummarizeWithoutKeyMakesNoCall(t *testing.T) {
	s := New("", "", "http://127.0.0.1:1")
	assert.False(t, s.Configured())

	summary, err := s.Summarize(context.Background(), domain.Request{Kind: domain.PromptKindStock, Items: newsItems("a")})
	assert.ErrorIs(t, err, errors.ErrMissingCredentials)
	assert.Empty(t, summary)
}

func TestIsFailure(t *testing.T) {
	assert.True(t, domain.IsFailure("Error generating summary: boom"))
	assert.True(t, domain.IsFailure("  Error: API key missing"))
	assert.False(t, domain.IsFailure("오늘의 뉴스"))
}
