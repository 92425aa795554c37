package ratelimit

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig is the rate limit for one endpoint.
type EndpointConfig struct {
	Path   string     // Exact path, or a prefix when it ends with "/"
	Method string     // HTTP method
	Rate   rate.Limit // Sustained requests per second
	Burst  int        // Requests allowed at once
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Endpoints       []EndpointConfig
	CleanupInterval time.Duration
	// IdleTTL is how long an unused client limiter is kept.
	IdleTTL time.Duration
}

// AnalysisConfig limits only analysis submissions, the one expensive endpoint.
// perSecond and burst fall back to 1 and 5 when not positive.
func AnalysisConfig(perSecond float64, burst int) *Config {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 5
	}
	return &Config{
		Enabled: true,
		Endpoints: []EndpointConfig{
			{Path: "/analyses", Method: http.MethodPost, Rate: rate.Limit(perSecond), Burst: burst},
		},
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
	}
}

// MatchEndpoint returns the configuration for path and method, or nil when the endpoint is unlimited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		c := &configs[i]
		if c.Method == method && len(c.Path) > 0 && c.Path[len(c.Path)-1] == '/' &&
			len(path) >= len(c.Path) && path[:len(c.Path)] == c.Path {
			return c
		}
	}
	return nil
}
