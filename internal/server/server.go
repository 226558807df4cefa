package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/megapayer/site/internal/config"
	"github.com/megapayer/site/internal/contact"
	"github.com/megapayer/site/internal/escrow"
	"github.com/megapayer/site/internal/preview"
	"github.com/megapayer/site/internal/scene"
	"github.com/megapayer/site/internal/whitepaper"
)

//go:embed static
var staticFS embed.FS

// Exporter renders a whitepaper excerpt to PDF.
type Exporter interface {
	Export(ctx context.Context, id, title string) ([]byte, error)
}

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    *whitepaper.Store
	Exporter Exporter
	Contact  *contact.Service
	Presets  scene.Presets
	Previews *preview.Renderer
	Escrow   escrow.Config
	Registry *prometheus.Registry
	Now      func() time.Time
}

type Server struct {
	Deps
	limiter *RateLimiter
	metrics *httpMetrics

	thumbs     singleflight.Group
	thumbsMu   sync.RWMutex
	thumbCache map[string]*preview.Thumbnail
}

func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Previews == nil {
		d.Previews = preview.NewRenderer(preview.DefaultWidth)
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	return &Server{
		Deps:       d,
		limiter:    NewRateLimiter(d.Config.PDF.RatePerSecond, d.Config.PDF.RateBurst, d.Log.Named("ratelimit")),
		metrics:    newHTTPMetrics(d.Registry),
		thumbCache: make(map[string]*preview.Thumbnail),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if s.Config.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(s.metrics.handler)
	r.Use(requestLogger(s.Log.Named("http")))
	r.Use(middleware.Recoverer)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	r.Handle("/whitepapers/*", http.StripPrefix("/whitepapers/", http.FileServer(http.Dir(s.Config.WhitepaperDir))))

	r.Get("/", s.handleHome)
	r.Get("/about", s.handleAbout)
	r.Get("/team", s.handleTeam)
	r.Get("/legal/terms", s.handleTerms)
	r.Get("/legal/privacy", s.handlePrivacy)
	r.Get("/support", s.handleSupport)
	r.Get("/status", s.handleStatus)
	r.Get("/airdrop", s.handleAirdrop)
	r.Get("/contact", s.handleContactPage)
	r.Post("/contact", s.handleContactPost)
	r.Get("/coming-soon", s.handleComingSoon)
	r.Get("/products/{kind}", s.handleProduct)
	r.Get("/whitepapers", s.handleWhitepapers)
	r.Get("/whitepaper/{id}", s.handleWhitepaper)

	r.Route("/api", func(r chi.Router) {
		// Every method reaches the handler so non-POST gets a JSON 405.
		r.With(s.limiter.Handler).HandleFunc("/generate-pdf/{id}", s.handleGeneratePDF)
		r.Post("/contact", s.handleContactAPI)
		r.Post("/signup", s.handleSignup)
		r.Get("/scenes", s.handleScenes)
		r.Get("/scene/{kind}", s.handleScene)
		r.Get("/scene/{kind}/frame", s.handleFrame)
		r.Get("/countdown", s.handleCountdown)
		r.Get("/escrow", s.handleEscrow)
		r.Get("/status", s.handleStatusAPI)
		r.Get("/whitepaper/{id}/preview.png", s.handlePreview)
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))

	r.NotFound(s.handleNotFound)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Config.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
	}

	prune := time.NewTicker(time.Minute)
	defer prune.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-prune.C:
				s.limiter.Prune()
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("server listening", zap.String("addr", s.Config.Addr), zap.String("base_url", s.Config.BaseURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
