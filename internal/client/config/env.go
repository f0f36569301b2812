package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envAPIBaseURL        = "PORTER_API_BASE_URL"
	envSessionDBPath     = "PORTER_SESSION_DB"
	envSessionExpiryDays = "PORTER_SESSION_EXPIRY_DAYS"
	envZones             = "PORTER_ZONES"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is loaded first when present; a
// missing file is not an error. Unset or malformed variables leave the
// current value in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envSessionDBPath); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv(envSessionExpiryDays); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.SessionExpiryDays = days
		}
	}
	if v := os.Getenv(envZones); v != "" {
		cfg.Zones = v
	}
}
