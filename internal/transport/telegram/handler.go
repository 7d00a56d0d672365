package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	relayDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/relay/domain"
	relayService "github.com/reshetovitsme/news-digest-bot/internal/modules/relay/service"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/samber/oops"
)

// Handler turns Telegram updates into relay messages
type Handler struct {
	cfg       *config.Config
	forwarder *relayService.Forwarder
	profiles  []string
}

// New creates a new Telegram handler
func New(cfg *config.Config, forwarder *relayService.Forwarder, profiles []string) *Handler {
	return &Handler{
		cfg:       cfg,
		forwarder: forwarder,
		profiles:  profiles,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypePrefix, h.handleStatus)
}

// Listen drops the pending backlog and long-polls until ctx is cancelled.
func (h *Handler) Listen(ctx context.Context, b *bot.Bot) error {
	if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
		return oops.With("context", "dropping pending updates").Wrap(err)
	}

	slog.Info("Relay listener started", "chat_id", h.cfg.TelegramChatID, "allowed_users", len(h.cfg.AllowedUsers), "dry_run", h.cfg.DryRun)
	b.Start(ctx)
	slog.Info("Relay listener stopped")
	return nil
}

// HandleUpdate forwards plain text messages to the poster
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	in, ok := toInbound(update)
	if !ok {
		return
	}

	out := h.forwarder.Forward(ctx, in)
	if out.Reply == "" {
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: in.ChatID,
		Text:   out.Reply,
	}); err != nil {
		slog.Error("Failed to send confirmation", "error", err, "chat_id", in.ChatID, "status", out.Status)
	}
}

func toInbound(update *models.Update) (relayDomain.Inbound, bool) {
	if update == nil || update.Message == nil {
		return relayDomain.Inbound{}, false
	}
	msg := update.Message

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	// Commands, including ones addressed as /cmd@bot in groups, are never posted.
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return relayDomain.Inbound{}, false
	}

	in := relayDomain.Inbound{
		UpdateID: update.ID,
		ChatID:   msg.Chat.ID,
		Text:     text,
		SentAt:   time.Unix(int64(msg.Date), 0),
	}
	if msg.From != nil {
		in.UserID = msg.From.ID
		in.Username = msg.From.Username
	}
	return in, true
}

func (h *Handler) checkAuthorization(update *models.Update) bool {
	var userID int64
	if update.Message.From != nil {
		userID = update.Message.From.ID
	}
	return h.forwarder.IsAuthorized(update.Message.Chat.ID, userID)
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.checkAuthorization(update) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "❌ You are not authorized to use this bot.",
		})
		return
	}

	text := `👋 Welcome to the News Digest relay!

Digests are sent here for review. Reply with the text you want published and it will be posted to X.

Available commands:
/help - Show this help message
/status - Show relay status`

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleStart(ctx, b, update)
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.checkAuthorization(update) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "❌ Unauthorized",
		})
		return
	}

	lastUpdate := "none"
	if id, ok := h.forwarder.Cursor().Last(); ok {
		lastUpdate = fmt.Sprintf("%d", id)
	}
	mode := "live"
	if h.cfg.DryRun {
		mode = "dry run"
	}
	posting := "ready"
	if !h.cfg.XPostingConfigured() {
		posting = "missing credentials"
	}

	text := fmt.Sprintf(`📊 Relay Status:

Mode: %s
X posting: %s
Last processed update: %s
Profiles: %s
HTTP Port: %s`,
		mode, posting, lastUpdate, strings.Join(h.profiles, ", "), h.cfg.HTTPPort)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}
