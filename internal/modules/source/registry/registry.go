package registry

import (
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Profile is a named source list together with how a run over it behaves.
type Profile struct {
	Name    string
	Title   string
	Subject string
	Sources []domain.Source
	Order   domain.OrderMode
	// Windows are the lookbacks tried in turn until one finds items.
	Windows []time.Duration
	Top     int
	Prompt  summaryDomain.PromptKind
}

// WithTicker returns a copy with the ticker placeholder filled in.
func (p Profile) WithTicker(ticker string) Profile {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return p
	}

	p.Title = strings.ReplaceAll(p.Title, TickerPlaceholder, ticker)
	p.Subject = strings.ReplaceAll(p.Subject, TickerPlaceholder, ticker)
	p.Sources = lo.Map(p.Sources, func(s domain.Source, _ int) domain.Source {
		s.Name = strings.ReplaceAll(s.Name, TickerPlaceholder, ticker)
		s.Endpoint = strings.ReplaceAll(s.Endpoint, TickerPlaceholder, url.QueryEscape(ticker))
		s.Query.Keywords = lo.Map(s.Query.Keywords, func(k string, _ int) string {
			return strings.ReplaceAll(k, TickerPlaceholder, ticker)
		})
		return s
	})
	return p
}

// Registry holds the profiles available to the process. It is built once at
// startup and read-only afterwards.
type Registry struct {
	profiles map[string]Profile
}

// New creates a registry from the built-in profiles with the configured
// profiles layered on top
func New(overrides map[string]config.ProfileConfig) (*Registry, error) {
	profiles := defaultProfiles()

	for name, override := range overrides {
		name = strings.ToLower(strings.TrimSpace(name))
		profile := merge(profiles[name], name, override)
		if err := validate(profile); err != nil {
			return nil, oops.With("profile", name).Wrap(err)
		}
		profiles[name] = profile
	}

	return &Registry{profiles: profiles}, nil
}

// Profile returns a copy of the named profile.
func (r *Registry) Profile(name string) (Profile, error) {
	p, ok := r.profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, oops.With("profile", name, "available", r.Names()).Wrap(errors.ErrProfileNotFound)
	}
	p.Sources = slices.Clone(p.Sources)
	p.Windows = slices.Clone(p.Windows)
	return p, nil
}

// Names lists the profile names in alphabetical order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.profiles))
}

func merge(base Profile, name string, o config.ProfileConfig) Profile {
	base.Name = name
	if o.Title != "" {
		base.Title = o.Title
	}
	if o.Subject != "" {
		base.Subject = o.Subject
	}
	if len(o.Sources) > 0 {
		base.Sources = slices.Clone(o.Sources)
	}
	if o.Order != "" {
		base.Order = o.Order
	}
	if len(o.Windows) > 0 {
		base.Windows = slices.Clone(o.Windows)
	}
	if o.Top > 0 {
		base.Top = o.Top
	}
	if o.Prompt != "" {
		base.Prompt = o.Prompt
	}

	if base.Title == "" {
		base.Title = name
	}
	if base.Order == "" {
		base.Order = domain.OrderModeFixed
	}
	if len(base.Windows) == 0 {
		base.Windows = []time.Duration{day}
	}
	if base.Top <= 0 {
		base.Top = summaryDomain.DefaultTop
	}
	return base
}

func validate(p Profile) error {
	if len(p.Sources) == 0 {
		return oops.Errorf("profile has no sources")
	}
	if !p.Prompt.IsValid() {
		return oops.With("prompt", p.Prompt).Errorf("invalid prompt kind")
	}
	if !p.Order.IsValid() {
		return oops.With("order", p.Order).Errorf("invalid order mode")
	}
	for _, w := range p.Windows {
		if w <= 0 {
			return oops.With("window", w).Errorf("lookback window must be positive")
		}
	}
	for _, s := range p.Sources {
		if s.Name == "" || s.Endpoint == "" {
			return oops.With("source", s.Name, "endpoint", s.Endpoint).Errorf("source needs a name and an endpoint")
		}
		if !s.Kind.IsValid() {
			return oops.With("source", s.Name, "kind", s.Kind).Wrap(errors.ErrUnsupportedKind)
		}
		if s.Kind == domain.KindScrapedHtml && s.Selector.Block == "" {
			return oops.With("source", s.Name).Errorf("scraped source needs a block selector")
		}
	}
	return nil
}
