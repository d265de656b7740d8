package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/config"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/services"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/logging"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/jsonfile"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/telemetry"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/web"
)

func main() {
	app := &cli.App{
		Name:  "stealthnet-site",
		Usage: "Landing page and admin panel for the VPN service",
		Before: func(c *cli.Context) error {
			// A missing .env is normal; the process environment still applies.
			_ = godotenv.Load()
			return nil
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve pages and the admin API (or export once when STATIC_EXPORT=1)",
				Action: serve,
			},
			{
				Name:  "export",
				Usage: "render the public pages into a static directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "target directory (defaults to EXPORT_DIR)",
					},
				},
				Action: export,
			},
			{
				Name:   "check",
				Usage:  "audit the configuration before a production launch",
				Action: check,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "🚨 [FATAL] %v\n", err)
		os.Exit(1)
	}
}

// deps is the set of components every command builds from the config.
type deps struct {
	cfg     *config.Config
	logger  *slog.Logger
	closer  io.Closer
	data    *jsonfile.Store
	hub     *telemetry.Hub
	info    *services.SiteInfoService
	tariffs *services.TariffService
	site    *web.Site
}

func newDeps() (*deps, error) {
	cfg := config.Load()

	logger, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	data := jsonfile.NewStore(cfg.DataDir, logger)
	hub := telemetry.NewHub()
	info := services.NewSiteInfoService(data, hub, logger)
	tariffs := services.NewTariffService(data, hub, logger)

	site, err := web.New(info, tariffs, logger)
	if err != nil {
		closer.Close()
		return nil, err
	}

	return &deps{
		cfg:     cfg,
		logger:  logger,
		closer:  closer,
		data:    data,
		hub:     hub,
		info:    info,
		tariffs: tariffs,
		site:    site,
	}, nil
}

func export(c *cli.Context) error {
	rt, err := newDeps()
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	dir := c.String("out")
	if dir == "" {
		dir = rt.cfg.ExportDir
	}
	return rt.site.Export(c.Context, dir, rt.cfg.PublicDir)
}
