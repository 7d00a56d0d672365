package service

import (
	"slices"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/samber/lo"
)

// Shuffler decides the order in which sources are attempted.
// Implementations must not modify the slice they are given.
type Shuffler interface {
	Shuffle(sources []domain.Source) []domain.Source
}

// RandomShuffler spreads load across sources by trying them in a new random
// order on every call
type RandomShuffler struct{}

func (RandomShuffler) Shuffle(sources []domain.Source) []domain.Source {
	return lo.Shuffle(slices.Clone(sources))
}

// FixedShuffler keeps the configured priority order.
type FixedShuffler struct{}

func (FixedShuffler) Shuffle(sources []domain.Source) []domain.Source {
	return slices.Clone(sources)
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(sources []domain.Source) []domain.Source

func (f ShufflerFunc) Shuffle(sources []domain.Source) []domain.Source {
	return f(slices.Clone(sources))
}
