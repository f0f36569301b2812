package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/porterowner/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config after parsing; zero values leave the
// current setting untouched so the file can be partial.
type JsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	SessionDBPath     string `json:"session_db_path"`
	SessionExpiryDays int    `json:"session_expiry_days"`
	Zones             string `json:"zones"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.SessionExpiryDays > 0 {
		cfg.SessionExpiryDays = jc.SessionExpiryDays
	}
	if jc.Zones != "" {
		cfg.Zones = jc.Zones
	}
}
