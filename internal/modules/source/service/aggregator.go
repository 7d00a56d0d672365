package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/fetcher"
	"github.com/samber/lo"
)

// Aggregator tries sources one at a time until one of them yields items
// inside the lookback window.
type Aggregator struct {
	fetcher fetcher.Fetcher
	random  Shuffler
	fixed   Shuffler
	now     func() time.Time
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithClock replaces the wall clock used to compute the cutoff.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithShuffler replaces the strategy used for OrderModeRandom.
func WithShuffler(s Shuffler) Option {
	return func(a *Aggregator) {
		a.random = s
	}
}

// NewAggregator creates a new aggregator on top of the given fetcher
func NewAggregator(f fetcher.Fetcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher: f,
		random:  RandomShuffler{},
		fixed:   FixedShuffler{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate returns the fresh items of the first source that has any. An
// empty result means every source failed or was stale.
func (a *Aggregator) Aggregate(ctx context.Context, sources []domain.Source, lookback time.Duration, order domain.OrderMode) []domain.Item {
	return a.AggregateReport(ctx, sources, lookback, order).Items
}

// AggregateReport is Aggregate with a record of every attempted source.
func (a *Aggregator) AggregateReport(ctx context.Context, sources []domain.Source, lookback time.Duration, order domain.OrderMode) domain.Report {
	report := domain.Report{Lookback: lookback}
	cutoff := a.now().Add(-lookback)
	ctx = fetcher.WithSince(ctx, cutoff)

	for _, source := range a.shuffler(order).Shuffle(sources) {
		result := a.fetcher.Fetch(ctx, source)
		fresh := Filter(result.Items, cutoff)

		report.Attempts = append(report.Attempts, domain.Attempt{
			Source:  source,
			Fetched: len(result.Items),
			Fresh:   len(fresh),
			Err:     result.Err,
		})

		if result.Err != nil {
			slog.Warn("Source failed, trying next", "source", source.Name, "kind", source.Kind, "error", result.Err)
			continue
		}
		if len(fresh) == 0 {
			slog.Info("No fresh items from source", "source", source.Name, "fetched", len(result.Items), "lookback", lookback)
			continue
		}

		if undated := lo.CountBy(fresh, func(item domain.Item) bool { return !item.DatedBySource }); undated > 0 {
			slog.Warn("Source items without publish time assumed fresh", "source", source.Name, "count", undated)
		}

		slog.Info("Found fresh items", "source", source.Name, "count", len(fresh), "lookback", lookback)
		report.Items = source.Cap(fresh)
		report.Source = source
		return report
	}

	slog.Info("All sources exhausted", "attempted", len(report.Attempts), "lookback", lookback)
	return report
}

// Collect runs one aggregation pass per window, widening until a pass finds
// something. The report of the last pass is returned.
func (a *Aggregator) Collect(ctx context.Context, sources []domain.Source, windows []time.Duration, order domain.OrderMode) domain.Report {
	var report domain.Report
	for i, lookback := range windows {
		report = a.AggregateReport(ctx, sources, lookback, order)
		if !report.Empty() {
			return report
		}
		if i < len(windows)-1 {
			slog.Info("Nothing fresh, widening lookback", "from", lookback, "to", windows[i+1])
		}
	}
	return report
}

func (a *Aggregator) shuffler(order domain.OrderMode) Shuffler {
	if order == domain.OrderModeRandom {
		return a.random
	}
	return a.fixed
}
