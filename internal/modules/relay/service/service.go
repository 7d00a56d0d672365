package service

import (
	"context"
	stderrors "errors"
	"html"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/oops"
)

// Sender is the part of the Telegram client the relay needs. *bot.Bot
// satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Service sends digests to the operator chat
type Service struct {
	sender Sender
	chatID string
}

// New creates a new relay service. A nil sender or an empty chat id leaves
// the relay unconfigured.
func New(sender Sender, chatID string) *Service {
	return &Service{
		sender: sender,
		chatID: strings.TrimSpace(chatID),
	}
}

// Configured reports whether messages can be sent.
func (s *Service) Configured() bool {
	return s.sender != nil && s.chatID != ""
}

// Send delivers text formatted as HTML. When Telegram rejects the markup the
// message is resent once as plain text.
func (s *Service) Send(ctx context.Context, text string) error {
	if !s.Configured() {
		return oops.With("context", "TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID is not set").Wrap(errors.ErrMissingCredentials)
	}

	_, err := s.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err == nil {
		slog.Info("Message sent to Telegram", "chat_id", s.chatID)
		return nil
	}
	if !stderrors.Is(err, bot.ErrorBadRequest) {
		return oops.With("chat_id", s.chatID).Wrapf(err, "sending message")
	}

	slog.Warn("HTML message rejected, retrying as plain text", "chat_id", s.chatID, "error", err)
	if _, err := s.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: s.chatID,
		Text:   PlainText(text),
	}); err != nil {
		return oops.With("chat_id", s.chatID).Wrapf(err, "sending plain text message")
	}

	slog.Info("Message sent to Telegram as plain text", "chat_id", s.chatID)
	return nil
}

var markupReplacer = strings.NewReplacer("<b>", "", "</b>", "", "<i>", "", "</i>", "")

// PlainText removes the markup FormatDigest produces.
func PlainText(text string) string {
	return html.UnescapeString(markupReplacer.Replace(text))
}
