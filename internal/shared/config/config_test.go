package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
telegram_chat_id: "-100123"
allowed_users: [111, 222]
fetch_timeout: 5s
default_ticker: TSLA
app_env: Local
profiles:
  synbio:
    title: Synthetic biology
    order: random
    prompt: biotech
    windows: [12h, 36h]
    sources:
      - name: SynBioBeta
        endpoint: https://synbiobeta.com/feed
        kind: rss
      - name: Press
        endpoint: https://example.com/press
        kind: scraped_html
        selector:
          block: li.release
          title: a
          date_layout: "January 2, 2006"
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileWithEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", yamlConfig)
	t.Setenv("DEFAULT_TICKER", "DNA")
	t.Setenv("GEMINI_API_KEY", "gemini-secret")
	t.Setenv("DRY_RUN", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "-100123", cfg.TelegramChatID)
	assert.Equal(t, []int64{111, 222}, cfg.AllowedUsers)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "DNA", cfg.DefaultTicker)
	assert.Equal(t, "gemini-secret", cfg.GeminiAPIKey)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, AppEnvLocal, cfg.AppEnv)

	synbio, ok := cfg.Profiles["synbio"]
	require.True(t, ok)
	assert.Equal(t, sourceDomain.OrderModeRandom, synbio.Order)
	assert.Equal(t, summaryDomain.PromptKindBiotech, synbio.Prompt)
	assert.Equal(t, []time.Duration{12 * time.Hour, 36 * time.Hour}, synbio.Windows)
	require.Len(t, synbio.Sources, 2)
	assert.Equal(t, sourceDomain.KindScrapedHtml, synbio.Sources[1].Kind)
	assert.Equal(t, "li.release", synbio.Sources[1].Selector.Block)
	assert.Equal(t, "January 2, 2006", synbio.Sources[1].Selector.DateLayout)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"http_port": "9090"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "https://api.twitter.com", cfg.XAPIURL)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
}

func TestLoadAllowedUsersFromEnv(t *testing.T) {
	path := writeConfig(t, "config.toml", `http_port = "8081"`)
	t.Setenv("ALLOWED_USERS", "10, 20,abc")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, cfg.AllowedUsers)
}

func TestLoadAllowedUsersShapes(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		env  string
		want []int64
	}{
		{name: "env comma list", file: "config.json", body: `{}`, env: "111,222", want: []int64{111, 222}},
		{name: "env single id", file: "config.json", body: `{}`, env: "111", want: []int64{111}},
		{name: "yaml list", file: "config.yaml", body: "allowed_users: [111, 222]\n", want: []int64{111, 222}},
		{name: "yaml quoted list", file: "config.yaml", body: "allowed_users: [\"111\", \"222\"]\n", want: []int64{111, 222}},
		{name: "yaml single id", file: "config.yaml", body: "allowed_users: 111\n", want: []int64{111}},
		{name: "yaml comma string", file: "config.yaml", body: "allowed_users: \"111, 222\"\n", want: []int64{111, 222}},
		{name: "json list", file: "config.json", body: `{"allowed_users": [111, 222]}`, want: []int64{111, 222}},
		{name: "toml list", file: "config.toml", body: "allowed_users = [111, 222]\n", want: []int64{111, 222}},
		{name: "env overrides file", file: "config.yaml", body: "allowed_users: [1]\n", env: "7,8", want: []int64{7, 8}},
		{name: "unset", file: "config.json", body: `{}`, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.body)
			if tt.env != "" {
				t.Setenv("ALLOWED_USERS", tt.env)
			}

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.AllowedUsers)
		})
	}
}

func TestLoadUnknownAppEnvFallsBack(t *testing.T) {
	path := writeConfig(t, "config.json", `{"app_env": "staging"}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, AppEnvProduction, cfg.AppEnv)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeConfig(t, "config.ini", "x=1")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCredentialChecks(t *testing.T) {
	cfg := &Config{XConsumerKey: "k", XConsumerSecret: "s", XAccessToken: "t"}
	assert.False(t, cfg.XPostingConfigured())
	cfg.XAccessTokenSecret = "ts"
	assert.True(t, cfg.XPostingConfigured())

	assert.False(t, (&Config{TelegramBotToken: "tok"}).TelegramConfigured())
	assert.True(t, (&Config{TelegramBotToken: "tok", TelegramChatID: "1"}).TelegramConfigured())
}

func TestParseAllowedUsers(t *testing.T) {
	assert.Equal(t, []int64{}, ParseAllowedUsers(""))
	assert.Equal(t, []int64{1, 2, 3}, ParseAllowedUsers("1, 2,,3"))
	assert.Equal(t, []int64{-100}, ParseAllowedUsers("-100,x"))
}
