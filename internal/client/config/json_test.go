package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	raw := []byte(`{
		"server_endpoint_addr": "10.0.0.5:50051",
		"online_check_interval": "5s",
		"data_dir": "fwdata",
		"cache_strategy": "remote-only"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(raw, &jc))
	require.Equal(t, "10.0.0.5:50051", jc.ServerEndpointAddr)
	require.Equal(t, 5*time.Second, jc.OnlineCheckInterval.Duration)
	require.Equal(t, "fwdata", jc.DataDir)
	require.Equal(t, "remote-only", jc.CacheStrategy)
}

func TestJsonConfig_IntervalAsNanoseconds(t *testing.T) {
	raw := []byte(`{"online_check_interval": 3000000000}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(raw, &jc))
	require.Equal(t, 3*time.Second, jc.OnlineCheckInterval.Duration)
}
