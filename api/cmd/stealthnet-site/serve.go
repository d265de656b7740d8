package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/handlers"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/middleware"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/api/router"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/config"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/services"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/uploads"
)

func serve(c *cli.Context) error {
	rt, err := newDeps()
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	cfg, logger := rt.cfg, rt.logger

	if cfg.StaticExport {
		logger.Info("STATIC_EXPORT=1, rendering site instead of serving", slog.String("dir", cfg.ExportDir))
		return rt.site.Export(c.Context, cfg.ExportDir, cfg.PublicDir)
	}

	logger.Info("🚀 Booting site", slog.String("env", cfg.Environment))
	if !cfg.IsProduction() && cfg.AdminPassword == config.DevAdminPassword {
		logger.Warn("Using the development admin password; set ADMIN_PASSWORD before going live")
	}

	// --- Dependency Injection ---
	tokens := services.NewTokenService(cfg.SessionSecret)
	authService, err := services.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash, tokens, logger)
	if err != nil {
		return err
	}
	uploadStore := uploads.NewStore(cfg.UploadsDir(), "/uploads")

	loginLimiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5)
	writeLimiter := middleware.NewRateLimiter(rate.Limit(10), 30)

	mux := router.NewRouter(router.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins,
		PublicDir:       cfg.PublicDir,
		SiteInfoHandler: handlers.NewSiteInfoHandler(rt.info),
		TariffHandler:   handlers.NewTariffHandler(rt.tariffs),
		AuthHandler:     handlers.NewAuthHandler(authService, cfg.IsProduction()),
		UploadHandler:   handlers.NewUploadHandler(uploadStore, rt.hub, logger),
		EventsHandler:   handlers.NewEventsHandler(rt.hub, cfg.AllowedOrigins, logger),
		HealthHandler:   handlers.NewHealthHandler(rt.data),
		AuthMiddleware:  middleware.NewAuthMiddleware(authService, handlers.SessionCookieName, logger),
		LoginLimiter:    loginLimiter,
		WriteLimiter:    writeLimiter,
		Site:            rt.site,
		Logger:          logger,
	})

	// --- Background Workers ---
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go loginLimiter.Cleanup(ctx)
	go writeLimiter.Cleanup(ctx)

	// --- HTTP Gateway ---
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🌐 Site active", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// --- Graceful Exit ---
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", slog.String("error", err.Error()))
		return err
	}
	logger.Info("✅ Site shut down")
	return nil
}
