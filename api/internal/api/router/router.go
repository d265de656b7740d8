package router

import (
	"compress/flate"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/handlers"
	site_middleware "github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/middleware"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/web"
)

// RouterConfig defines the dependencies required to build the routing tree.
type RouterConfig struct {
	AllowedOrigins  []string
	PublicDir       string
	SiteInfoHandler *handlers.SiteInfoHandler
	TariffHandler   *handlers.TariffHandler
	AuthHandler     *handlers.AuthHandler
	UploadHandler   *handlers.UploadHandler
	EventsHandler   *handlers.EventsHandler
	HealthHandler   *handlers.HealthHandler
	AuthMiddleware  *site_middleware.AuthMiddleware
	LoginLimiter    *site_middleware.RateLimiter
	WriteLimiter    *site_middleware.RateLimiter
	Site            *web.Site
	Logger          *slog.Logger
}

// NewRouter constructs the chi multiplexer, attaches global middleware and
// wires the pages and the JSON API.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// =========================================================================
	// 1. Global Middleware Pipeline
	// =========================================================================

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(site_middleware.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(middleware.StripSlashes)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", cfg.HealthHandler.Check)

	// =========================================================================
	// 2. JSON API
	// =========================================================================

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NoCache)

		// Public reads
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))
			r.Use(site_middleware.Compress(flate.DefaultCompression))
			r.Get("/site-info", cfg.SiteInfoHandler.Get)
			r.Get("/tariffs", cfg.TariffHandler.List)
		})

		r.With(cfg.LoginLimiter.Handler, site_middleware.MaxBytes(4<<10)).
			Post("/admin/auth", cfg.AuthHandler.Login)
		r.Post("/admin/logout", cfg.AuthHandler.Logout)

		// Admin session required
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware.RequireSession)

			// Long-lived; no timeout or compression on the socket.
			r.Get("/admin/events", cfg.EventsHandler.Stream)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(30 * time.Second))
				r.Use(cfg.WriteLimiter.Handler)

				r.Get("/admin/session", cfg.AuthHandler.Session)

				r.With(site_middleware.MaxBytes(1_048_576)).Put("/site-info", cfg.SiteInfoHandler.Update)

				r.Group(func(r chi.Router) {
					r.Use(site_middleware.MaxBytes(64 << 10))
					r.Post("/tariffs", cfg.TariffHandler.Create)
					r.Put("/tariffs/{id}", cfg.TariffHandler.Update)
					r.Delete("/tariffs/{id}", cfg.TariffHandler.Delete)
				})

				r.Post("/upload", cfg.UploadHandler.Upload)
			})
		})
	})

	// =========================================================================
	// 3. Pages & Assets
	// =========================================================================

	r.Group(func(r chi.Router) {
		r.Use(site_middleware.Compress(flate.DefaultCompression))

		r.Get("/", cfg.Site.Page(web.PageHome))
		r.Get("/instructions", cfg.Site.Page(web.PageInstructions))
		r.Get("/contacts", cfg.Site.Page(web.PageContacts))
		r.Get("/offerta", cfg.Site.Page(web.PageOfferta))
		r.Get("/agreement", cfg.Site.Page(web.PageAgreement))
		r.Get("/admin", cfg.Site.Page(web.PageAdmin))
		r.Get("/sitemap.xml", cfg.Site.Sitemap)
		r.Get("/robots.txt", cfg.Site.Robots)

		r.Handle("/static/*", http.StripPrefix("/static/", cfg.Site.Static()))
	})

	if cfg.PublicDir != "" {
		public := http.FileServer(http.Dir(cfg.PublicDir))
		r.Handle("/uploads/*", public)
		// Top-level public files such as /logo.png and /favicon.ico.
		r.Get("/{asset:[A-Za-z0-9_.-]+\\.(png|jpe?g|gif|webp|svg|ico)}", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(cfg.PublicDir, filepath.Base(chi.URLParam(req, "asset"))))
		})
	}

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	return r
}
