package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pooja-site/internal/app"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/MKhiriev/go-pooja-site/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-pooja-site")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	err := newRootCommand(buildInfo, log, os.Stdout).ExecuteContext(ctx)
	stop()

	if err != nil {
		// serve has already logged a failed connection
		alreadyLogged := errors.Is(err, errServeFailed) && errors.Is(err, app.ErrDatabaseConnection)
		if !alreadyLogged {
			log.Error().Err(err).Msg("server exited with error")
		}
		os.Exit(1)
	}
}
