package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DevAdminPassword is accepted only outside production.
	DevAdminPassword = "afina2025"

	devSessionSecret = "stealthnet-development-session-secret"

	// MinSessionSecretLen is the shortest SESSION_SECRET accepted in production.
	MinSessionSecretLen = 32
)

// Config holds all runtime configuration of the site process.
type Config struct {
	Environment string // "development" or "production"
	Port        string

	// Storage
	DataDir      string // site-info.json and tariffs.json
	PublicDir    string // static assets; uploads land in PublicDir/uploads
	ExportDir    string
	StaticExport bool

	// Admin identity
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string

	AllowedOrigins []string

	LogLevel string
	LogFile  string
}

// UploadsDir is where logo uploads are written.
func (c *Config) UploadsDir() string {
	return filepath.Join(c.PublicDir, "uploads")
}

// IsProduction reports whether the strict production rules apply.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads .env (if present) and the process environment. Missing secrets in
// production stop the process.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("🚨 [FATAL] %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the process environment without exiting.
func FromEnv() (*Config, error) {
	env := getEnv("SITE_ENV", "development")

	cfg := &Config{
		Environment:       env,
		Port:              getEnv("PORT", "3000"),
		DataDir:           getEnv("DATA_DIR", "data"),
		PublicDir:         getEnv("PUBLIC_DIR", "public"),
		ExportDir:         getEnv("EXPORT_DIR", "out"),
		StaticExport:      getEnv("STATIC_EXPORT", "") == "1",
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           getEnv("LOG_FILE", ""),
	}

	var errs []error

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH environment variable is required in production"))
		}
		cfg.AdminPassword = DevAdminPassword
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("SESSION_SECRET environment variable is required in production"))
		}
		cfg.SessionSecret = devSessionSecret
	} else if cfg.IsProduction() && len(cfg.SessionSecret) < MinSessionSecretLen {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least %d characters in production", MinSessionSecretLen))
	}

	// Same-origin admin needs no CORS; origins are only for a separately hosted panel.
	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
