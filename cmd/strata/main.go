package main

import (
	"os"

	"github.com/strata-config/strata/internal/cli"
	"github.com/strata-config/strata/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := cli.NewRootCommand(buildInfo).Execute(); err != nil {
		os.Exit(1)
	}
}
