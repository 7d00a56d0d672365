package http

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	feedService "github.com/reshetovitsme/news-digest-bot/internal/modules/feed/service"
	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/source/registry"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	sloghttp "github.com/samber/slog-http"
)

// Digests aggregates a profile on demand.
type Digests interface {
	Preview(ctx context.Context, name, ticker string) (registry.Profile, sourceDomain.Report, error)
}

// Server serves digest feeds over HTTP
type Server struct {
	cfg         *config.Config
	digests     Digests
	registry    *registry.Registry
	feedService *feedService.Service
	logger      *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, digests Digests, reg *registry.Registry, feedService *feedService.Service) *Server {
	return &Server{
		cfg:         cfg,
		digests:     digests,
		registry:    reg,
		feedService: feedService,
		logger:      slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the routed handler wrapped in logging and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rss/{profile}", s.handleRSSFeed)
	mux.HandleFunc("GET /profiles", s.handleProfiles)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Digest server starting", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("profile")
	ticker := r.URL.Query().Get("ticker")

	profile, report, err := s.digests.Preview(r.Context(), name, ticker)
	if stderrors.Is(err, errors.ErrProfileNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("Error aggregating profile", "profile", name, "error", err)
		http.Error(w, "Failed to generate feed", http.StatusInternalServerError)
		return
	}

	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	feed := s.feedService.GenerateFeed(profile, report, baseURL)

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

type profileView struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Order   string   `json:"order"`
	Windows []string `json:"windows"`
	Sources []string `json:"sources"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	views := lo.FilterMap(s.registry.Names(), func(name string, _ int) (profileView, bool) {
		p, err := s.registry.Profile(name)
		if err != nil {
			return profileView{}, false
		}
		return profileView{
			Name:    p.Name,
			Title:   p.Title,
			Order:   p.Order.String(),
			Windows: lo.Map(p.Windows, func(d time.Duration, _ int) string { return d.String() }),
			Sources: lo.Map(p.Sources, func(src sourceDomain.Source, _ int) string { return src.Name }),
		}, true
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views); err != nil {
		s.logger.Error("Error encoding profiles", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>News Digest</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>News Digest Service</h1>
    <div class="info">
        <p>This service previews the items a digest run would pick up.</p>
        <p>To access a feed, use: <code>/rss/{profile}</code></p>
        <p>Example: <code>/rss/stock?ticker=DNA</code></p>
    </div>
    <p><a href="/profiles">Profiles</a> | <a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
