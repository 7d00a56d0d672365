package domain

import "time"

// Attempt records what happened when one source was tried.
type Attempt struct {
	Source  Source
	Fetched int
	Fresh   int
	Err     error
}

// Skipped reports whether the aggregator moved on past this source.
func (a Attempt) Skipped() bool {
	return a.Err != nil || a.Fresh == 0
}

// Report is the outcome of one aggregation pass.
type Report struct {
	Items    []Item
	Source   Source
	Lookback time.Duration
	Attempts []Attempt
}

// Empty reports whether no source produced fresh items.
func (r Report) Empty() bool {
	return len(r.Items) == 0
}
