//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Status is what the relay did with one inbound message
// ENUM(posted,dry_run,failed,unauthorized,stale,duplicate,empty)
type Status string
