//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase --marshal

package domain

// PromptKind selects the instructions given to the summarizer
// ENUM(stock,biotech,curation)
type PromptKind string
