package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	postService "github.com/reshetovitsme/news-digest-bot/internal/modules/post/service"
	relayService "github.com/reshetovitsme/news-digest-bot/internal/modules/relay/service"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replies struct {
	mu    sync.Mutex
	texts []string
}

func (r *replies) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	text := ""
	if strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		json.NewDecoder(req.Body).Decode(&body)
		text = fmt.Sprint(body["text"])
	} else {
		req.ParseMultipartForm(1 << 20)
		text = req.FormValue("text")
	}

	r.mu.Lock()
	r.texts = append(r.texts, text)
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":-100123,"type":"supergroup"}}}`))
}

func (r *replies) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

type fakePoster struct{ posts []string }

func (p *fakePoster) Post(_ context.Context, text string) (string, error) {
	p.posts = append(p.posts, text)
	return "77", nil
}

func newHandler(t *testing.T, poster postService.Poster, cfg *config.Config) (*Handler, *bot.Bot, *replies) {
	t.Helper()
	r := &replies{}
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	b, err := bot.New("123:test", bot.WithSkipGetMe(), bot.WithServerURL(ts.URL))
	require.NoError(t, err)

	started := time.Unix(1700000000, 0)
	forwarder := relayService.NewForwarder(poster, cfg.TelegramChatID, cfg.AllowedUsers, started)
	return New(cfg, forwarder, []string{"biotech", "stock"}), b, r
}

func message(updateID int64, chatID, userID int64, text string) *models.Update {
	return &models.Update{
		ID: updateID,
		Message: &models.Message{
			ID:   int(updateID),
			From: &models.User{ID: userID, Username: "operator"},
			Chat: models.Chat{ID: chatID},
			Text: text,
			Date: 1700000100,
		},
	}
}

func TestHandleUpdatePostsAndConfirms(t *testing.T) {
	poster := &fakePoster{}
	h, b, r := newHandler(t, poster, &config.Config{TelegramChatID: "-100123"})

	h.HandleUpdate(context.Background(), b, message(1, -100123, 5, "오늘의 포스트"))
	h.HandleUpdate(context.Background(), b, message(1, -100123, 5, "오늘의 포스트"))

	assert.Equal(t, []string{"오늘의 포스트"}, poster.posts)
	sent := r.all()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "🚀")
}

func TestHandleUpdateDryRunEcho(t *testing.T) {
	h, b, r := newHandler(t, postService.DryRun{}, &config.Config{TelegramChatID: "-100123", DryRun: true})

	h.HandleUpdate(context.Background(), b, message(3, -100123, 5, "draft"))

	sent := r.all()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "✅")
	assert.Contains(t, sent[0], "draft")
}

func TestHandleUpdateRejectsStrangers(t *testing.T) {
	poster := &fakePoster{}
	h, b, r := newHandler(t, poster, &config.Config{TelegramChatID: "-100123"})

	h.HandleUpdate(context.Background(), b, message(1, 42, 42, "spam"))

	assert.Empty(t, poster.posts)
	sent := r.all()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "not authorized")
}

func TestHandleUpdateIgnoresNonMessages(t *testing.T) {
	poster := &fakePoster{}
	h, b, r := newHandler(t, poster, &config.Config{TelegramChatID: "-100123"})

	h.HandleUpdate(context.Background(), b, &models.Update{ID: 9})

	assert.Empty(t, poster.posts)
	assert.Empty(t, r.all())
}

func TestHandleUpdateNeverPostsCommands(t *testing.T) {
	poster := &fakePoster{}
	h, b, r := newHandler(t, poster, &config.Config{TelegramChatID: "-100123"})

	h.HandleUpdate(context.Background(), b, message(1, -100123, 5, "/status@newsbot"))
	h.HandleUpdate(context.Background(), b, message(2, -100123, 5, "/unknown do it"))
	h.HandleUpdate(context.Background(), b, message(3, -100123, 5, " /start"))

	assert.Empty(t, poster.posts)
	assert.Empty(t, r.all())

	h.HandleUpdate(context.Background(), b, message(4, -100123, 5, "real post"))
	assert.Equal(t, []string{"real post"}, poster.posts)
}

func TestStatusCommand(t *testing.T) {
	h, b, r := newHandler(t, &fakePoster{}, &config.Config{TelegramChatID: "-100123", HTTPPort: "8080"})

	h.HandleUpdate(context.Background(), b, message(4, -100123, 5, "hello"))
	h.handleStatus(context.Background(), b, message(5, -100123, 5, "/status"))

	sent := r.all()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1], "Last processed update: 4")
	assert.Contains(t, sent[1], "X posting: missing credentials")
	assert.Contains(t, sent[1], "biotech, stock")
}
