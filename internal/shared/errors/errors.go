package errors

import "errors"

var (
	ErrMissingBotToken    = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUnsupportedKind    = errors.New("unsupported source kind")
	ErrEmptyFeed          = errors.New("feed has no entries")
	ErrSelectorMiss       = errors.New("selector matched no content blocks")
	ErrUnexpectedStatus   = errors.New("unexpected status code")
	ErrEmptyTitle         = errors.New("entry has no title")
	ErrSummaryFailed      = errors.New("summary generation failed")
	ErrEmptySummary       = errors.New("summarizer returned no content")
)
