package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/config"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/jsonfile"
)

// check audits the environment the way production will read it.
func check(c *cli.Context) error {
	fmt.Println("🔍 Running configuration audit...")

	hasErrors := false
	fail := func(format string, args ...any) {
		fmt.Printf("❌ FAIL: "+format+"\n", args...)
		hasErrors = true
	}
	pass := func(msg string) { fmt.Println("✅ PASS: " + msg) }

	// --- Audit Point 1: Environment ---
	if os.Getenv("SITE_ENV") != "production" {
		fmt.Println("⚠️  NOTICE: SITE_ENV is not \"production\"; development fallbacks are active.")
	}

	// --- Audit Point 2: Admin password ---
	password, hash := os.Getenv("ADMIN_PASSWORD"), os.Getenv("ADMIN_PASSWORD_HASH")
	switch {
	case hash != "":
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			fail("ADMIN_PASSWORD_HASH is not a bcrypt hash")
		} else {
			pass("Admin password hash is bcrypt.")
		}
	case password == "":
		fail("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set.")
	case password == config.DevAdminPassword:
		fail("ADMIN_PASSWORD is the development default.")
	case len(password) < 12:
		fail("ADMIN_PASSWORD is too short. Min: 12 characters (Current: %d)", len(password))
	default:
		pass("Admin password is set.")
	}

	// --- Audit Point 3: Session secret strength ---
	if secret := os.Getenv("SESSION_SECRET"); len(secret) < config.MinSessionSecretLen {
		fail("SESSION_SECRET is too short. Min: %d characters (Current: %d)", config.MinSessionSecretLen, len(secret))
	} else {
		pass("Session secret length is sufficient.")
	}

	// --- Audit Point 4: Writable storage ---
	cfg, err := config.FromEnv()
	if err != nil {
		fail("%v", err)
	} else {
		if err := jsonfile.NewStore(cfg.DataDir, nil).Writable(); err != nil {
			fail("DATA_DIR %q is not writable: %v", cfg.DataDir, err)
		} else {
			pass("Data directory is writable.")
		}
		if err := jsonfile.NewStore(cfg.UploadsDir(), nil).Writable(); err != nil {
			fail("uploads directory %q is not writable: %v", cfg.UploadsDir(), err)
		} else {
			pass("Uploads directory is writable.")
		}
	}

	fmt.Println("--------------------------------------------------")
	if hasErrors {
		fmt.Println("🚨 VERDICT: CONFIGURATION AUDIT FAILED.")
		return cli.Exit("configuration audit failed", 1)
	}
	fmt.Println("🚀 VERDICT: Configuration validated. Ready for launch.")
	return nil
}
