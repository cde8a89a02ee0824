package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `default:"30s"`

	// HTTPHandlerTimeout - timeout for handling single http request
	HTTPHandlerTimeout time.Duration `default:"60s"`

	// ScoringEnabled - enables influence score calculation on the dashboard
	ScoringEnabled bool `default:"true"`

	// MetricsEnabled - exposes prometheus metrics under /metrics
	MetricsEnabled bool `default:"true"`

	// ContributorsFilePath - file the last fetched contributors list is written to
	ContributorsFilePath string `default:"contributors.csv"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token).
	// G_TOKEN is used when GITHUB_TOKEN is not set.
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls, 0 disables limiting
	GithubAPIRateLimit float64 `default:"10"`

	// GithubAPIRateBurst - number of github calls allowed at once, before rate limit applies
	GithubAPIRateBurst int `default:"20"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"1h"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// LogFile - optional path of rotated log file
	LogFile string `default:""`
}
