package domain

import (
	"strings"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
)

// DefaultTop is the number of items handed to the summarizer
const DefaultTop = 3

// ErrorMarker prefixes summaries that report a failure instead of content.
const ErrorMarker = "Error"

// Request is the input of one summarization call.
type Request struct {
	Kind PromptKind
	// Subject names what the digest is about, e.g. a ticker or a company.
	Subject string
	Items   []sourceDomain.Item
	// SourceKind is the kind of the source the items came from. Curation
	// prompts differ for social posts and blog entries.
	SourceKind sourceDomain.Kind
	Top        int
}

// IsFailure reports whether a summary carries the error marker.
func IsFailure(summary string) bool {
	return strings.HasPrefix(strings.TrimSpace(summary), ErrorMarker)
}
