package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Fetcher retrieves one source and normalizes its entries. Failures are
// reported through FetchResult.Err and never returned or panicked.
type Fetcher interface {
	Fetch(ctx context.Context, source domain.Source) domain.FetchResult
}

// Options are shared by all fetcher variants
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Now supplies the fetch instant used for undated entries.
	Now func() time.Time
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: o.Timeout}
	}
	return o
}

type sinceKey struct{}

// WithSince attaches the lookback cutoff of the current aggregation pass.
// Fetchers that can narrow their query by time (social search) read it.
func WithSince(ctx context.Context, since time.Time) context.Context {
	return context.WithValue(ctx, sinceKey{}, since)
}

// SinceFrom returns the cutoff attached with WithSince.
func SinceFrom(ctx context.Context) (time.Time, bool) {
	since, ok := ctx.Value(sinceKey{}).(time.Time)
	return since, ok
}

// Dispatcher routes a source to the fetcher registered for its kind.
type Dispatcher struct {
	fetchers map[domain.Kind]Fetcher
}

// NewDispatcher creates a dispatcher over the given per-kind fetchers
func NewDispatcher(fetchers map[domain.Kind]Fetcher) *Dispatcher {
	return &Dispatcher{fetchers: fetchers}
}

func (d *Dispatcher) Fetch(ctx context.Context, source domain.Source) domain.FetchResult {
	f, ok := d.fetchers[source.Kind]
	if !ok {
		return domain.FetchResult{
			Source: source,
			Err:    oops.With("source", source.Name, "kind", source.Kind).Wrap(errors.ErrUnsupportedKind),
		}
	}
	return f.Fetch(ctx, source)
}

// normalize turns raw entries into items, dropping entries without a title.
func normalize(entries []domain.RawEntry, source domain.Source, fetchedAt time.Time) []domain.Item {
	return lo.FilterMap(entries, func(raw domain.RawEntry, _ int) (domain.Item, bool) {
		item, err := domain.NewItem(raw, source.Name, fetchedAt)
		return item, err == nil
	})
}
