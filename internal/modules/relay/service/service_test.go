package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	ChatID    string
	Text      string
	ParseMode string
}

// telegramStub serves the Bot API sendMessage method. Messages sent with
// HTML parse mode are rejected when rejectHTML is set.
type telegramStub struct {
	mu         sync.Mutex
	rejectHTML bool
	sent       []sentMessage
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
		http.NotFound(w, r)
		return
	}
	fields := requestFields(r)
	msg := sentMessage{
		ChatID:    fields["chat_id"],
		Text:      fields["text"],
		ParseMode: fields["parse_mode"],
	}

	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if s.rejectHTML && msg.ParseMode == "HTML" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities"}`))
		return
	}
	w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":-100123,"type":"supergroup"},"text":"ok"}}`))
}

// requestFields reads Bot API parameters sent either as JSON or as a
// multipart form.
func requestFields(r *http.Request) map[string]string {
	fields := map[string]string{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body {
			fields[k] = fmt.Sprint(v)
		}
		return fields
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		r.ParseForm()
	}
	for k := range r.Form {
		v := r.Form.Get(k)
		if unquoted, err := strconv.Unquote(v); err == nil {
			v = unquoted
		}
		fields[k] = v
	}
	return fields
}

func (s *telegramStub) messages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

func newTestBot(t *testing.T, stub *telegramStub) *bot.Bot {
	t.Helper()
	ts := httptest.NewServer(stub)
	t.Cleanup(ts.Close)

	b, err := bot.New("123:test", bot.WithSkipGetMe(), bot.WithServerURL(ts.URL))
	require.NoError(t, err)
	return b
}

func TestSendUsesHTML(t *testing.T) {
	stub := &telegramStub{}
	relay := New(newTestBot(t, stub), "-100123")

	require.NoError(t, relay.Send(context.Background(), "<b>[DNA]</b>\n1. news"))

	sent := stub.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "-100123", sent[0].ChatID)
	assert.Equal(t, "HTML", sent[0].ParseMode)
	assert.Equal(t, "<b>[DNA]</b>\n1. news", sent[0].Text)
}

func TestSendFallsBackToPlainText(t *testing.T) {
	stub := &telegramStub{rejectHTML: true}
	relay := New(newTestBot(t, stub), "-100123")

	require.NoError(t, relay.Send(context.Background(), "<b>[Biotech]</b>\n1. A &amp; B <i>@author</i>"))

	sent := stub.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, "HTML", sent[0].ParseMode)
	assert.Equal(t, "", sent[1].ParseMode)
	assert.Equal(t, "[Biotech]\n1. A & B @author", sent[1].Text)
}

func TestSendWithoutConfiguration(t *testing.T) {
	assert.ErrorIs(t, New(nil, "-100123").Send(context.Background(), "hi"), errors.ErrMissingCredentials)

	stub := &telegramStub{}
	relay := New(newTestBot(t, stub), " ")
	assert.False(t, relay.Configured())
	assert.ErrorIs(t, relay.Send(context.Background(), "hi"), errors.ErrMissingCredentials)
	assert.Empty(t, stub.messages())
}

func TestFormatDigest(t *testing.T) {
	items := make([]sourceDomain.Item, 0, 7)
	for i := range 7 {
		items = append(items, sourceDomain.Item{
			Title:       "News <" + string(rune('A'+i)) + ">",
			Link:        "https://news.example.com/?a=1&b=2",
			PublishedAt: time.Now(),
		})
	}
	items[0].Author = "@jasonjkelly"

	digest := FormatDigest("DNA & friends", items, 0)

	assert.True(t, strings.HasPrefix(digest, "<b>[DNA &amp; friends]</b>\n\n"))
	assert.Contains(t, digest, "1. News &lt;A&gt;\n<i>@jasonjkelly</i>\nLink: https://news.example.com/?a=1&amp;b=2\n")
	assert.Contains(t, digest, "5. News &lt;E&gt;")
	assert.NotContains(t, digest, "6. ")
	assert.True(t, strings.HasSuffix(digest, digestInstruction))

	plain := PlainText(digest)
	assert.Contains(t, plain, "[DNA & friends]")
	assert.Contains(t, plain, "1. News <A>\n@jasonjkelly\n")
}

func TestCursor(t *testing.T) {
	c := &Cursor{}
	_, seen := c.Last()
	assert.False(t, seen)

	assert.True(t, c.Advance(0))
	assert.False(t, c.Advance(0))
	assert.True(t, c.Advance(5))
	assert.False(t, c.Advance(3))
	assert.True(t, c.Advance(6))

	last, seen := c.Last()
	assert.True(t, seen)
	assert.Equal(t, int64(6), last)
}
