package service

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/pipeline/domain"
	postService "github.com/reshetovitsme/news-digest-bot/internal/modules/post/service"
	relayService "github.com/reshetovitsme/news-digest-bot/internal/modules/relay/service"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/fetcher"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/registry"
	sourceService "github.com/reshetovitsme/news-digest-bot/internal/modules/source/service"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	summaryService "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/service"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
)

// Relay hands a digest to the human operator.
type Relay interface {
	Send(ctx context.Context, text string) error
}

// Service runs the fetch, summarize and post steps for a profile
type Service struct {
	registry      *registry.Registry
	fetcher       fetcher.Fetcher
	aggregator    *sourceService.Aggregator
	summarizer    summaryService.Summarizer
	poster        postService.Poster
	relay         Relay
	defaultTicker string
}

// New creates a new pipeline service
func New(
	reg *registry.Registry,
	f fetcher.Fetcher,
	aggregator *sourceService.Aggregator,
	summarizer summaryService.Summarizer,
	poster postService.Poster,
	relay Relay,
	defaultTicker string,
) *Service {
	return &Service{
		registry:      reg,
		fetcher:       f,
		aggregator:    aggregator,
		summarizer:    summarizer,
		poster:        poster,
		relay:         relay,
		defaultTicker: defaultTicker,
	}
}

// Profile resolves a profile with its ticker placeholder filled in.
func (s *Service) Profile(name, ticker string) (registry.Profile, error) {
	profile, err := s.registry.Profile(name)
	if err != nil {
		return registry.Profile{}, err
	}
	if ticker == "" {
		ticker = s.defaultTicker
	}
	return profile.WithTicker(ticker), nil
}

// Run performs one pass. Step failures are reported in the result and
// logged; only an unknown profile is returned as an error.
func (s *Service) Run(ctx context.Context, name string, opts domain.Options) (domain.Result, error) {
	result := domain.Result{RunID: uuid.NewString(), Profile: name}
	logger := slog.With("run_id", result.RunID, "profile", name)

	profile, err := s.Profile(name, opts.Ticker)
	if err != nil {
		return result, err
	}

	logger.Info("Run started", "sources", len(profile.Sources), "windows", profile.Windows, "hitl", opts.HITL, "dry_run", opts.DryRun)

	report := s.aggregator.Collect(ctx, profile.Sources, profile.Windows, profile.Order)
	result.Items = report.Items
	result.Source = report.Source
	result.Lookback = report.Lookback
	result.Attempts = report.Attempts

	if report.Empty() {
		logger.Info("Nothing to report", "attempts", len(report.Attempts))
		result.Outcome = domain.OutcomeNothingToReport
		return result, nil
	}

	if opts.HITL {
		return s.relayDigest(ctx, logger, profile, result), nil
	}

	summary, err := s.summarizer.Summarize(ctx, summaryDomain.Request{
		Kind:       profile.Prompt,
		Subject:    profile.Subject,
		Items:      report.Items,
		SourceKind: report.Source.Kind,
		Top:        profile.Top,
	})
	result.Summary = summary
	switch {
	case stderrors.Is(err, errors.ErrMissingCredentials):
		logger.Error("Summarizer not configured, skipping summary", "error", err, "items", len(report.Items))
		result.Outcome = domain.OutcomeSummarySkipped
		result.Err = err
		return result, nil
	case err != nil || summaryDomain.IsFailure(summary):
		logger.Error("Summary failed, not posting", "error", err, "summary", summary)
		result.Outcome = domain.OutcomeSummaryFailed
		result.Err = err
		return result, nil
	}

	if opts.DryRun {
		logger.Info("Dry run, summary not posted", "summary", summary)
		result.Outcome = domain.OutcomeDryRun
		return result, nil
	}

	id, err := s.poster.Post(ctx, summary)
	switch {
	case stderrors.Is(err, errors.ErrMissingCredentials):
		logger.Error("Poster not configured, skipping post", "error", err)
		result.Outcome = domain.OutcomePostSkipped
		result.Err = err
	case err != nil:
		logger.Error("Failed to post summary", "error", err)
		result.Outcome = domain.OutcomePostFailed
		result.Err = err
	default:
		logger.Info("Summary posted", "post_id", id)
		result.PostID = id
		result.Outcome = domain.OutcomePosted
	}
	return result, nil
}

func (s *Service) relayDigest(ctx context.Context, logger *slog.Logger, profile registry.Profile, result domain.Result) domain.Result {
	digest := relayService.FormatDigest(profile.Title, result.Items, relayService.DigestTop)
	if err := s.relay.Send(ctx, digest); err != nil {
		logger.Error("Failed to relay digest", "error", err)
		result.Outcome = domain.OutcomeRelayFailed
		result.Err = err
		return result
	}

	logger.Info("Digest relayed for review", "items", min(len(result.Items), relayService.DigestTop))
	result.Outcome = domain.OutcomeRelayed
	return result
}

// Preview aggregates a profile without summarizing or posting.
func (s *Service) Preview(ctx context.Context, name, ticker string) (registry.Profile, sourceDomain.Report, error) {
	profile, err := s.Profile(name, ticker)
	if err != nil {
		return registry.Profile{}, sourceDomain.Report{}, err
	}
	report := s.aggregator.Collect(ctx, profile.Sources, profile.Windows, profile.Order)
	return profile, report, nil
}

// Probe fetches every source of a profile once, without any time window,
// and reports what each one returned.
func (s *Service) Probe(ctx context.Context, name, ticker string) ([]sourceDomain.FetchResult, error) {
	profile, err := s.Profile(name, ticker)
	if err != nil {
		return nil, err
	}

	return lo.Map(profile.Sources, func(source sourceDomain.Source, _ int) sourceDomain.FetchResult {
		result := s.fetcher.Fetch(ctx, source)
		if result.Err != nil {
			slog.Warn("Source probe failed", "source", source.Name, "error", result.Err)
		} else {
			slog.Info("Source probe succeeded", "source", source.Name, "items", len(result.Items))
		}
		return result
	}), nil
}
