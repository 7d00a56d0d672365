package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	// The recent search endpoint only covers the last seven days.
	maxSearchWindow = 7*24*time.Hour - time.Minute

	minSearchResults     = 10
	maxSearchResults     = 100
	defaultSearchResults = 10
)

// SocialFetcher queries the X API v2 recent search endpoint
type SocialFetcher struct {
	opts        Options
	bearerToken string
}

// NewSocialFetcher creates a new social search fetcher
func NewSocialFetcher(bearerToken string, opts Options) *SocialFetcher {
	return &SocialFetcher{
		opts:        opts.withDefaults(),
		bearerToken: bearerToken,
	}
}

type searchResponse struct {
	Data     []searchPost `json:"data"`
	Includes struct {
		Users []searchUser `json:"users"`
	} `json:"includes"`
}

type searchPost struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	AuthorID      string    `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	PublicMetrics struct {
		LikeCount    int `json:"like_count"`
		RetweetCount int `json:"retweet_count"`
	} `json:"public_metrics"`
}

type searchUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (f *SocialFetcher) Fetch(ctx context.Context, source domain.Source) domain.FetchResult {
	result := domain.FetchResult{Source: source}
	if f.bearerToken == "" {
		result.Err = oops.With("source", source.Name, "context", "X_BEARER_TOKEN is not set").Wrap(errors.ErrMissingCredentials)
		return result
	}

	fetchedAt := f.opts.Now()

	endpoint, err := f.searchURL(ctx, source, fetchedAt)
	if err != nil {
		result.Err = oops.With("source", source.Name, "endpoint", source.Endpoint).Wrap(err)
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		result.Err = oops.With("source", source.Name).Wrapf(err, "creating request")
		return result
	}
	req.Header.Set("Authorization", "Bearer "+f.bearerToken)
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.opts.HTTPClient.Do(req)
	if err != nil {
		result.Err = oops.With("source", source.Name).Wrapf(err, "searching posts")
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		result.Err = oops.With("source", source.Name, "status", resp.StatusCode, "body", string(body)).Wrap(errors.ErrUnexpectedStatus)
		return result
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		result.Err = oops.With("source", source.Name).Wrapf(err, "decoding search response")
		return result
	}

	users := lo.SliceToMap(payload.Includes.Users, func(u searchUser) (string, searchUser) {
		return u.ID, u
	})

	entries := lo.Map(payload.Data, func(post searchPost, _ int) domain.RawEntry {
		raw := domain.RawEntry{
			Title:      post.Text,
			Summary:    post.Text,
			Author:     "Unknown",
			AuthorName: "Unknown",
			Likes:      post.PublicMetrics.LikeCount,
			Reposts:    post.PublicMetrics.RetweetCount,
		}
		if !post.CreatedAt.IsZero() {
			createdAt := post.CreatedAt
			raw.Published = &createdAt
		}
		if user, ok := users[post.AuthorID]; ok {
			raw.Author = "@" + user.Username
			raw.AuthorName = user.Name
			raw.Link = fmt.Sprintf("https://twitter.com/%s/status/%s", user.Username, post.ID)
		}
		return raw
	})

	items := normalize(entries, source, fetchedAt)
	slices.SortStableFunc(items, func(a, b domain.Item) int {
		return b.Engagement() - a.Engagement()
	})

	result.Items = items
	return result
}

func (f *SocialFetcher) searchURL(ctx context.Context, source domain.Source, now time.Time) (string, error) {
	u, err := url.Parse(source.Endpoint)
	if err != nil {
		return "", err
	}

	query := BuildQuery(source.Query)
	if query == "" {
		return "", oops.Errorf("empty search query")
	}

	maxResults := source.Query.MaxResults
	if maxResults == 0 {
		maxResults = defaultSearchResults
	}
	maxResults = min(max(maxResults, minSearchResults), maxSearchResults)

	params := u.Query()
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("tweet.fields", "created_at,author_id,public_metrics")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username,name")

	if since, ok := SinceFrom(ctx); ok {
		if floor := now.Add(-maxSearchWindow); since.Before(floor) {
			since = floor
		}
		params.Set("start_time", since.UTC().Format(time.RFC3339))
	}

	u.RawQuery = params.Encode()
	return u.String(), nil
}

// BuildQuery renders a search query: any keyword, from any author, without
// reposts unless they are requested.
func BuildQuery(q domain.Query) string {
	var parts []string

	keywords := lo.FilterMap(q.Keywords, func(k string, _ int) (string, bool) {
		k = strings.TrimSpace(k)
		if strings.ContainsRune(k, ' ') {
			k = strconv.Quote(k)
		}
		return k, k != ""
	})
	if len(keywords) > 0 {
		parts = append(parts, group(keywords))
	}

	authors := lo.FilterMap(q.Authors, func(a string, _ int) (string, bool) {
		a = strings.TrimPrefix(strings.TrimSpace(a), "@")
		return "from:" + a, a != ""
	})
	if len(authors) > 0 {
		parts = append(parts, group(authors))
	}

	if len(parts) > 0 && !q.IncludeReposts {
		parts = append(parts, "-is:retweet")
	}

	return strings.Join(parts, " ")
}

func group(terms []string) string {
	if len(terms) == 1 {
		return terms[0]
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}
