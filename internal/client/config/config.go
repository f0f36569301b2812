// Package config handles configuration for the Porter Owner CLI,
// including defaults, environment overlay, JSON overlay, and
// command-line flags.
package config

// Config holds runtime settings for the Porter Owner CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the version
//     prefix (e.g. https://book.ecargo.co.in/v2).
//   - SessionDBPath: location of the local session database.
//   - SessionExpiryDays: how many days a saved login stays valid.
//   - Zones: comma-separated zone ids used by the revenue report.
type Config struct {
	APIBaseURL        string
	SessionDBPath     string
	SessionExpiryDays int
	Zones             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://book.ecargo.co.in/v2"
	c.SessionDBPath = "porterowner.db"
	c.SessionExpiryDays = 31
	c.Zones = "1,2,3"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given via -c/-config) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
