package main

import (
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghcontributors/internal/adapter/github"
	"github.com/m-zajac/ghcontributors/internal/api/http"
	"github.com/m-zajac/ghcontributors/internal/api/http/limiter"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/m-zajac/ghcontributors/internal/database"
	"github.com/m-zajac/ghcontributors/internal/logging"
	"github.com/m-zajac/ghcontributors/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}
	if conf.GithubAPIToken == "" {
		conf.GithubAPIToken = os.Getenv("G_TOKEN")
	}

	l, logCloser, err := logging.New(logging.Config{
		Level:          conf.LogLevel,
		File:           conf.LogFile,
		FileMaxSizeMB:  100,
		FileMaxBackups: 3,
	})
	if err != nil {
		logrus.Fatalf("couldn't create logger: %v", err)
	}
	defer logCloser.Close()

	if conf.GithubAPIToken == "" {
		l.Warn("github token is not set, api rate limit is lower")
	}

	var m *metrics.Metrics
	if conf.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
	}

	var httpClient limiter.HTTPDoer = &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	if m != nil {
		httpClient = metrics.NewHTTPDoer(httpClient, m)
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
		conf.GithubAPIRateBurst,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	githubCachedClient, err := github.NewCachedClient(
		githubClient,
		conf.GithubClientCacheSize,
		conf.GithubClientCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client cache: %v", err)
	}

	service := app.NewService(
		githubCachedClient,
		database.NewContributorsFile(conf.ContributorsFilePath, false),
		conf.ServiceResponseTimeout,
	)

	mux := http.NewMux(
		service,
		conf.HTTPHandlerTimeout,
		conf.ScoringEnabled,
		m,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	l.WithFields(logrus.Fields{
		"address":        conf.HTTPServerAddress,
		"scoringEnabled": conf.ScoringEnabled,
		"file":           conf.ContributorsFilePath,
	}).Info("starting dashboard")
	server.Run()
}
