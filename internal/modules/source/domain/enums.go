//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase --marshal

package domain

// Kind selects how a source endpoint is fetched and parsed
// ENUM(rss,scraped_html,social_search)
type Kind string

// OrderMode controls the iteration order of a source list
// ENUM(fixed,random)
type OrderMode string
