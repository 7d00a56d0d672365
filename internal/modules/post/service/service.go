package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/dghubble/oauth1"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// MaxPostLength is the length limit enforced by X for standard accounts
const MaxPostLength = 280

// DryRunID is returned by the dry-run poster instead of a real post id.
const DryRunID = "dry-run"

// Poster publishes one text post and returns its id.
type Poster interface {
	Post(ctx context.Context, text string) (string, error)
}

// Credentials are the OAuth 1.0a user-context keys of the posting account.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

func (c Credentials) complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessTokenSecret != ""
}

// Service posts to X through the v2 API
type Service struct {
	creds   Credentials
	baseURL string
	client  *http.Client
}

// New creates a new X poster
func New(creds Credentials, baseURL string) *Service {
	if baseURL == "" {
		baseURL = "https://api.twitter.com"
	}
	s := &Service{
		creds:   creds,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	if creds.complete() {
		config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
		s.client = config.Client(context.Background(), token)
	}
	return s
}

type createRequest struct {
	Text string `json:"text"`
}

type createResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

func (s *Service) Post(ctx context.Context, text string) (string, error) {
	if s.client == nil {
		return "", oops.With("context", "X API credentials are not set").Wrap(errors.ErrMissingCredentials)
	}

	text = strings.TrimSpace(text)
	if length := utf8.RuneCountInString(text); length > MaxPostLength {
		slog.Warn("Post exceeds length limit and may be rejected", "length", length, "limit", MaxPostLength)
	}

	body, err := json.Marshal(createRequest{Text: text})
	if err != nil {
		return "", oops.Wrapf(err, "marshaling post")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return "", oops.Wrapf(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", oops.Wrapf(err, "sending post")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", oops.With("status", resp.StatusCode, "body", string(respBody)).Wrap(errors.ErrUnexpectedStatus)
	}

	var payload createResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", oops.Wrapf(err, "decoding response")
	}

	slog.Info("Post published", "post_id", payload.Data.ID)
	return payload.Data.ID, nil
}

// DryRun logs posts instead of publishing them
type DryRun struct{}

func (DryRun) Post(_ context.Context, text string) (string, error) {
	slog.Info("Dry run, not posting", "length", utf8.RuneCountInString(text), "text", text)
	return DryRunID, nil
}
