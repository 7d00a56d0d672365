package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

// Summarizer turns a handful of items into post text.
type Summarizer interface {
	Summarize(ctx context.Context, req domain.Request) (string, error)
}

// Service summarizes items with the Gemini generateContent API
type Service struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Gemini summarizer. Empty model and baseURL fall back to
// the public defaults.
func New(apiKey, model, baseURL string) *Service {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Configured reports whether an API key is present.
func (s *Service) Configured() bool {
	return s.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize returns the generated text. On failure it returns a summary
// carrying domain.ErrorMarker together with the error, so callers checking
// either one stop before posting.
func (s *Service) Summarize(ctx context.Context, req domain.Request) (string, error) {
	if !s.Configured() {
		return "", oops.With("context", "GEMINI_API_KEY is not set").Wrap(errors.ErrMissingCredentials)
	}
	if len(req.Items) == 0 {
		return "", oops.With("prompt_kind", req.Kind).Wrapf(errors.ErrSummaryFailed, "no items to summarize")
	}

	prompt, err := RenderPrompt(req)
	if err != nil {
		return failure(err)
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		return failure(err)
	}

	slog.Info("Summary generated", "model", s.model, "prompt_kind", req.Kind, "length", len([]rune(text)))
	return text, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", oops.Wrapf(err, "marshaling request")
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", oops.Wrapf(err, "creating request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", oops.Wrapf(err, "sending request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", oops.With("status", resp.StatusCode, "body", string(respBody)).Wrap(errors.ErrUnexpectedStatus)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", oops.Wrapf(err, "decoding response")
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", errors.ErrEmptySummary
	}

	text := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.ErrEmptySummary
	}
	return text, nil
}

func failure(err error) (string, error) {
	slog.Error("Error generating summary", "error", err)
	return fmt.Sprintf("%s generating summary: %v", domain.ErrorMarker, err), fmt.Errorf("%w: %w", errors.ErrSummaryFailed, err)
}
