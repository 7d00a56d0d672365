package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	postService "github.com/reshetovitsme/news-digest-bot/internal/modules/post/service"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/relay/domain"
)

// Forwarder posts operator messages received through the relay.
type Forwarder struct {
	poster       postService.Poster
	chatID       int64
	hasChat      bool
	allowedUsers []int64
	startedAt    time.Time
	cursor       *Cursor
}

// NewForwarder creates a new forwarder. Messages sent before startedAt are
// ignored so a restart does not republish the backlog.
func NewForwarder(poster postService.Poster, chatID string, allowedUsers []int64, startedAt time.Time) *Forwarder {
	f := &Forwarder{
		poster:       poster,
		allowedUsers: allowedUsers,
		startedAt:    startedAt,
		cursor:       &Cursor{},
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64); err == nil {
		f.chatID = id
		f.hasChat = true
	}
	return f
}

// IsAuthorized reports whether messages from this chat and user may be posted.
// With neither a chat nor users configured nobody is authorized.
func (f *Forwarder) IsAuthorized(chatID, userID int64) bool {
	if f.hasChat && chatID == f.chatID {
		return true
	}
	return slices.Contains(f.allowedUsers, userID)
}

// Cursor exposes the update cursor for status reporting.
func (f *Forwarder) Cursor() *Cursor {
	return f.cursor
}

func (f *Forwarder) Forward(ctx context.Context, in domain.Inbound) domain.Outcome {
	logger := slog.With("update_id", in.UpdateID, "chat_id", in.ChatID, "user_id", in.UserID)

	if !f.cursor.Advance(in.UpdateID) {
		logger.Debug("Skipping already processed update")
		return domain.Outcome{Status: domain.StatusDuplicate}
	}
	if !in.SentAt.IsZero() && in.SentAt.Before(f.startedAt) {
		logger.Info("Skipping message sent before listener start", "sent_at", in.SentAt)
		return domain.Outcome{Status: domain.StatusStale}
	}
	if !f.IsAuthorized(in.ChatID, in.UserID) {
		logger.Warn("Unauthorized relay message")
		return domain.Outcome{Status: domain.StatusUnauthorized, Reply: "❌ You are not authorized to post through this bot."}
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return domain.Outcome{Status: domain.StatusEmpty}
	}

	id, err := f.poster.Post(ctx, text)
	if err != nil {
		logger.Error("Failed to post relay message", "error", err)
		return domain.Outcome{
			Status: domain.StatusFailed,
			Reply:  fmt.Sprintf("❌ Failed to post to X: %v", err),
			Err:    err,
		}
	}

	if id == postService.DryRunID {
		return domain.Outcome{
			Status: domain.StatusDryRun,
			PostID: id,
			Reply:  "✅ [dry run] Would post to X:\n\n" + text,
		}
	}

	logger.Info("Relay message posted", "post_id", id)
	return domain.Outcome{
		Status: domain.StatusPosted,
		PostID: id,
		Reply:  fmt.Sprintf("🚀 Posted to X: https://x.com/i/web/status/%s", id),
	}
}
