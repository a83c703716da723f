package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vkozyrev/floodwatch/internal/flagx"
	"github.com/vkozyrev/floodwatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DataDir             string         `json:"data_dir"`
	CacheStrategy       string         `json:"cache_strategy"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. Absent flags mean no JSON is loaded. Read or unmarshal
// errors panic; config is a startup concern.
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

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.CacheStrategy != "" {
		cfg.CacheStrategy = CacheStrategy(jc.CacheStrategy)
	}
}
