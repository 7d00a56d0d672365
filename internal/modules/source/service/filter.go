package service

import (
	"time"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/samber/lo"
)

// Filter keeps the items published at or after cutoff, in their original order.
func Filter(items []domain.Item, cutoff time.Time) []domain.Item {
	return lo.Filter(items, func(item domain.Item, _ int) bool {
		return !item.PublishedAt.Before(cutoff)
	})
}
