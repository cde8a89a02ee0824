package main

import "time"

// Config is the container for exporter configuration
type Config struct {
	// ServiceResponseTimeout - timeout for the whole export
	ServiceResponseTimeout time.Duration `default:"2m"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api. G_TOKEN is used when GITHUB_TOKEN is not set.
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`
}
