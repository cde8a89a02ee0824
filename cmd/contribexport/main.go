// Command contribexport writes contributors of a single github repository to a csv file.
package main

import (
	"context"
	"flag"
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghcontributors/internal/adapter/github"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/m-zajac/ghcontributors/internal/database"
	"github.com/m-zajac/ghcontributors/internal/logging"
	"github.com/sirupsen/logrus"
)

func main() {
	repo := flag.String("repo", "apache/iceberg", "repository in owner/name form")
	output := flag.String("o", "contributors.csv", "output file path")
	flag.Parse()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}
	if conf.GithubAPIToken == "" {
		conf.GithubAPIToken = os.Getenv("G_TOKEN")
	}

	l, _, err := logging.New(logging.Config{Level: conf.LogLevel})
	if err != nil {
		logrus.Fatalf("couldn't create logger: %v", err)
	}

	githubClient := github.NewClient(
		&netHttp.Client{Timeout: 30 * time.Second},
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
	)
	file := database.NewContributorsFile(*output, true)
	service := app.NewService(githubClient, file, conf.ServiceResponseTimeout)

	r, contributors, err := service.FetchContributors(context.Background(), *repo)
	if err != nil {
		l.WithError(err).WithField("repo", *repo).Fatal("couldn't export contributors")
	}

	l.WithFields(logrus.Fields{
		"repo":         r.FullName,
		"contributors": len(contributors),
	}).Infof("Contributors written to %s", file.Path())
}
