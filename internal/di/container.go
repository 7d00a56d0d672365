package di

import (
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	feedService "github.com/reshetovitsme/news-digest-bot/internal/modules/feed/service"
	pipelineService "github.com/reshetovitsme/news-digest-bot/internal/modules/pipeline/service"
	postService "github.com/reshetovitsme/news-digest-bot/internal/modules/post/service"
	relayService "github.com/reshetovitsme/news-digest-bot/internal/modules/relay/service"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/fetcher"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/registry"
	sourceService "github.com/reshetovitsme/news-digest-bot/internal/modules/source/service"
	summaryService "github.com/reshetovitsme/news-digest-bot/internal/modules/summary/service"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	httpServer "github.com/reshetovitsme/news-digest-bot/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/news-digest-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup(cfg *config.Config) (do.Injector, error) {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	// Register Source Registry
	do.Provide(injector, func(i do.Injector) (*registry.Registry, error) {
		cfg := do.MustInvoke[*config.Config](i)
		reg, err := registry.New(cfg.Profiles)
		if err != nil {
			return nil, oops.With("context", "failed to build source registry").Wrap(err)
		}
		return reg, nil
	})

	// Register Fetchers
	do.Provide(injector, func(i do.Injector) (fetcher.Fetcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		opts := fetcher.Options{
			Timeout:   cfg.FetchTimeout,
			UserAgent: cfg.UserAgent,
		}
		return fetcher.NewDispatcher(map[sourceDomain.Kind]fetcher.Fetcher{
			sourceDomain.KindRss:          fetcher.NewRSSFetcher(opts),
			sourceDomain.KindScrapedHtml:  fetcher.NewHTMLFetcher(opts),
			sourceDomain.KindSocialSearch: fetcher.NewSocialFetcher(cfg.XBearerToken, opts),
		}), nil
	})

	// Register Aggregator
	do.Provide(injector, func(i do.Injector) (*sourceService.Aggregator, error) {
		f := do.MustInvoke[fetcher.Fetcher](i)
		return sourceService.NewAggregator(f), nil
	})

	// Register Summarizer
	do.Provide(injector, func(i do.Injector) (summaryService.Summarizer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return summaryService.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiAPIURL), nil
	})

	// Register Poster
	do.Provide(injector, func(i do.Injector) (postService.Poster, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.DryRun {
			return postService.DryRun{}, nil
		}
		if !cfg.XPostingConfigured() {
			slog.Warn("X API credentials are not set, posting will be skipped")
		}
		return postService.New(postService.Credentials{
			ConsumerKey:       cfg.XConsumerKey,
			ConsumerSecret:    cfg.XConsumerSecret,
			AccessToken:       cfg.XAccessToken,
			AccessTokenSecret: cfg.XAccessTokenSecret,
		}, cfg.XAPIURL), nil
	})

	// Register Relay Forwarder
	do.Provide(injector, func(i do.Injector) (*relayService.Forwarder, error) {
		cfg := do.MustInvoke[*config.Config](i)
		poster := do.MustInvoke[postService.Poster](i)
		return relayService.NewForwarder(poster, cfg.TelegramChatID, cfg.AllowedUsers, time.Now()), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		forwarder := do.MustInvoke[*relayService.Forwarder](i)
		reg := do.MustInvoke[*registry.Registry](i)
		return telegramHandler.New(cfg, forwarder, reg.Names()), nil
	})

	// Register Bot
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.TelegramBotToken == "" {
			return nil, errors.ErrMissingBotToken
		}
		handler := do.MustInvoke[*telegramHandler.Handler](i)

		opts := []bot.Option{
			bot.WithSkipGetMe(),
			bot.WithDefaultHandler(handler.HandleUpdate),
		}
		if cfg.TelegramAPIURL != "" {
			opts = append(opts, bot.WithServerURL(cfg.TelegramAPIURL))
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}

		handler.RegisterCommands(b)
		return b, nil
	})

	// Register Relay
	do.Provide(injector, func(i do.Injector) (*relayService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.TelegramConfigured() {
			return relayService.New(nil, cfg.TelegramChatID), nil
		}
		b, err := do.Invoke[*bot.Bot](i)
		if err != nil {
			slog.Debug("Telegram bot unavailable, relay disabled", "error", err)
			return relayService.New(nil, cfg.TelegramChatID), nil
		}
		return relayService.New(b, cfg.TelegramChatID), nil
	})

	// Register Pipeline
	do.Provide(injector, func(i do.Injector) (*pipelineService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return pipelineService.New(
			do.MustInvoke[*registry.Registry](i),
			do.MustInvoke[fetcher.Fetcher](i),
			do.MustInvoke[*sourceService.Aggregator](i),
			do.MustInvoke[summaryService.Summarizer](i),
			do.MustInvoke[postService.Poster](i),
			do.MustInvoke[*relayService.Service](i),
			cfg.DefaultTicker,
		), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(
			cfg,
			do.MustInvoke[*pipelineService.Service](i),
			do.MustInvoke[*registry.Registry](i),
			do.MustInvoke[*feedService.Service](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	report := injector.Shutdown()
	if report != nil && !report.Succeed {
		return oops.Errorf("shutdown failed: %s", report.Error())
	}
	return nil
}
