package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL, e.g. http://localhost:8000/api
//	-s session database file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval dashboard refresh interval (e.g., "1m")
func ParseFlags() *ClientConfig {
	var apiAddress string
	var sessionDBPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&apiAddress, "a", "", "API base URL")
	flag.StringVar(&sessionDBPath, "s", "", "Session database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Dashboard refresh interval (e.g., 1m)")

	flag.Parse()

	return &ClientConfig{
		Adapter: Adapter{
			APIAddress:     apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionDBPath: sessionDBPath,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
