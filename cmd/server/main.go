package main

import (
	"context"

	"github.com/MKhiriev/review-site/internal/config"
	"github.com/MKhiriev/review-site/internal/handler"
	"github.com/MKhiriev/review-site/internal/logger"
	"github.com/MKhiriev/review-site/internal/server"
	"github.com/MKhiriev/review-site/internal/service"
	"github.com/MKhiriev/review-site/internal/store"
	"github.com/MKhiriev/review-site/models"
)

// devVersion is reported when neither APP_VERSION nor linker flags set one.
const devVersion = "dev"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("review-site-server")
	log.Info().Stringer("build", buildInfo).Msg("starting review-site server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = devVersion
		if buildInfo.HasVersion() {
			cfg.App.Version = buildInfo.BuildVersion()
		}
	}

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
