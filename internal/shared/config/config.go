package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	summaryDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken string  `koanf:"telegram_bot_token"`
	TelegramChatID   string  `koanf:"telegram_chat_id"`
	TelegramAPIURL   string  `koanf:"telegram_api_url"`
	AllowedUsers     []int64 `koanf:"-"`

	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`
	GeminiAPIURL string `koanf:"gemini_api_url"`

	XConsumerKey       string `koanf:"x_consumer_key"`
	XConsumerSecret    string `koanf:"x_consumer_secret"`
	XAccessToken       string `koanf:"x_access_token"`
	XAccessTokenSecret string `koanf:"x_access_token_secret"`
	XBearerToken       string `koanf:"x_bearer_token"`
	XAPIURL            string `koanf:"x_api_url"`

	HTTPPort      string        `koanf:"http_port"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout"`
	UserAgent     string        `koanf:"user_agent"`
	DefaultTicker string        `koanf:"default_ticker"`
	LogLevel      string        `koanf:"log_level"`
	AppEnv        AppEnv        `koanf:"-"`
	DryRun        bool          `koanf:"dry_run"`

	Profiles map[string]ProfileConfig `koanf:"profiles"`
}

// ProfileConfig overrides a built-in profile or defines a new one.
// Zero fields keep the built-in value.
type ProfileConfig struct {
	Title   string                   `koanf:"title"`
	Subject string                   `koanf:"subject"`
	Sources []sourceDomain.Source    `koanf:"sources"`
	Order   sourceDomain.OrderMode   `koanf:"order"`
	Windows []time.Duration          `koanf:"windows"`
	Top     int                      `koanf:"top"`
	Prompt  summaryDomain.PromptKind `koanf:"prompt"`
}

// XPostingConfigured reports whether all four OAuth 1.0a credentials are set.
func (c *Config) XPostingConfigured() bool {
	return c.XConsumerKey != "" && c.XConsumerSecret != "" && c.XAccessToken != "" && c.XAccessTokenSecret != ""
}

// TelegramConfigured reports whether the relay can send messages.
func (c *Config) TelegramConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

var configFiles = []string{
	"config.yaml",
	"config.yml",
	"config.json",
	"config.toml",
}

// Load reads .env, then the config file, then the environment. An explicit
// path must exist; otherwise the first config file found in the working
// directory is used, if any.
func Load(path string) (*Config, error) {
	// A missing .env is fine, the variables may already be exported.
	_ = godotenv.Load()

	k := koanf.New(".")

	configFile := path
	if configFile == "" {
		configFile, _ = lo.Find(configFiles, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if configFile != "" {
		parser, err := parserFor(configFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	setDefaults(k)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// allowed_users is a comma list in the environment and a list or scalar in files
	cfg.AllowedUsers = allowedUsersFrom(k.Get("allowed_users"))

	if parsed, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = parsed
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	return &cfg, nil
}

func parserFor(configFile string) (koanf.Parser, error) {
	switch ext := filepath.Ext(configFile); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, oops.With("config_file", configFile).Errorf("unsupported config file extension: %s", ext)
	}
}

func setDefaults(k *koanf.Koanf) {
	defaults := map[string]any{
		"telegram_api_url": "https://api.telegram.org",
		"gemini_model":     "gemini-2.5-flash",
		"gemini_api_url":   "https://generativelanguage.googleapis.com/v1beta/models",
		"x_api_url":        "https://api.twitter.com",
		"http_port":        "8080",
		"fetch_timeout":    "15s",
		"default_ticker":   "DNA",
		"log_level":        "info",
		"app_env":          "production",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}
}

func allowedUsersFrom(raw any) []int64 {
	switch v := raw.(type) {
	case nil:
		return []int64{}
	case []any:
		return lo.FilterMap(v, func(item any, _ int) (int64, bool) {
			ids := allowedUsersFrom(item)
			return lo.FirstOrEmpty(ids), len(ids) == 1
		})
	case string:
		return ParseAllowedUsers(v)
	case int:
		return []int64{int64(v)}
	case int64:
		return []int64{v}
	case float64:
		return []int64{int64(v)}
	default:
		return ParseAllowedUsers(fmt.Sprint(v))
	}
}

// ParseAllowedUsers parses comma-separated user IDs string into []int64
func ParseAllowedUsers(s string) []int64 {
	if s == "" {
		return []int64{}
	}
	parts := strings.Split(s, ",")
	return lo.FilterMap(parts, func(part string, _ int) (int64, bool) {
		part = strings.TrimSpace(part)
		if part == "" {
			return 0, false
		}
		var id int64
		if _, err := fmt.Sscanf(part, "%d", &id); err == nil {
			return id, true
		}
		return 0, false
	})
}
