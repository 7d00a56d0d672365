package domain

import (
	"time"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
)

// Options tune a single run.
type Options struct {
	DryRun bool
	// HITL sends the digest to the operator chat instead of summarizing.
	HITL bool
	// Ticker fills the ticker placeholder of the profile. Empty uses the
	// configured default.
	Ticker string
}

// Result describes one pass over a profile.
type Result struct {
	RunID    string
	Profile  string
	Items    []sourceDomain.Item
	Source   sourceDomain.Source
	Lookback time.Duration
	Attempts []sourceDomain.Attempt
	Summary  string
	PostID   string
	Outcome  Outcome
	// Err is the error of the step that ended the run, if any.
	Err error
}
