package domain

// Source is a configured content origin. Sources are built once by the
// registry and never modified afterwards.
type Source struct {
	Name     string   `koanf:"name" json:"name"`
	Endpoint string   `koanf:"endpoint" json:"endpoint"`
	Kind     Kind     `koanf:"kind" json:"kind"`
	Selector Selector `koanf:"selector" json:"selector,omitempty"`
	Query    Query    `koanf:"query" json:"query,omitempty"`
	// MaxItems caps the fresh items kept from this source. Zero keeps all.
	MaxItems int `koanf:"max_items" json:"max_items,omitempty"`
}

// Cap trims items to MaxItems. Apply it after time filtering so stale
// entries never push fresh ones out.
func (s Source) Cap(items []Item) []Item {
	if s.MaxItems <= 0 || len(items) <= s.MaxItems {
		return items
	}
	return items[:s.MaxItems]
}

// Selector describes the repeating content blocks of a scraped page.
// Child selectors are evaluated relative to Block.
type Selector struct {
	Block      string `koanf:"block" json:"block"`
	Title      string `koanf:"title" json:"title"`
	Link       string `koanf:"link" json:"link"`
	Summary    string `koanf:"summary" json:"summary"`
	Date       string `koanf:"date" json:"date"`
	DateLayout string `koanf:"date_layout" json:"date_layout"`
}

// Query describes a social search: posts by any of Authors that
// mention any of Keywords.
type Query struct {
	Keywords       []string `koanf:"keywords" json:"keywords"`
	Authors        []string `koanf:"authors" json:"authors"`
	IncludeReposts bool     `koanf:"include_reposts" json:"include_reposts"`
	MaxResults     int      `koanf:"max_results" json:"max_results"`
}

// FetchResult is the outcome of one attempt against one source.
type FetchResult struct {
	Items  []Item
	Source Source
	Err    error
}

// OK reports whether the fetch completed without error.
func (r FetchResult) OK() bool {
	return r.Err == nil
}
