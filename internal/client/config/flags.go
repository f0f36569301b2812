package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/porterowner/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-d string   path to the session database (default from Config)
//	-e int      session expiry in days (default from Config)
//	-z string   comma-separated zone ids for revenue queries
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-e", "-z"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the session database")
	expiryDays := fs.Int("e", cfg.SessionExpiryDays, "session expiry (in days)")
	fs.StringVar(&cfg.Zones, "z", cfg.Zones, "comma-separated zone ids")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *expiryDays > 0 {
		cfg.SessionExpiryDays = *expiryDays
	}
}
