//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Outcome is where a run ended
// ENUM(nothing_to_report,relayed,relay_failed,summary_skipped,summary_failed,dry_run,posted,post_skipped,post_failed)
type Outcome string
