package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avidalm/authgate/internal/flagx"
	"github.com/avidalm/authgate/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so intervals can be written either as strings like
// "15s" or as integer nanoseconds. Zero values leave the corresponding
// Config field untouched.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	TokenDBPath    string         `json:"token_db_path"`
	ToastDuration  timex.Duration `json:"toast_duration"`
}

// parseJson overlays Config with values loaded from the JSON file given
// via the -c or -config flags. Without the flag nothing is loaded.
// Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, later stages overriding earlier.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.ToastDuration.Duration != 0 {
		cfg.ToastDuration = time.Duration(jc.ToastDuration.Duration)
	}
}
