package config

import (
	"fmt"
	"time"
)

// ClientConfig is the client-facing view of the merged configuration: the
// server endpoint to sync against, the bearer token to present and the
// local draft cache location.
type ClientConfig struct {
	// ServerAddress is the base URL of the groupsync server.
	ServerAddress string
	// Token is the bearer token presented on every request.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// CachePath is the file path of the local SQLite draft cache.
	CachePath string
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Client.ServerAddress,
		Token:          cfg.Client.Token,
		RequestTimeout: cfg.Client.RequestTimeout,
		CachePath:      cfg.Storage.CachePath,
	}

	return clientCfg, clientCfg.validate()
}
