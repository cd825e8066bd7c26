package main

import (
	"fmt"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/handler"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/server"
	"github.com/MKhiriev/go-site-config/internal/service"
	"github.com/MKhiriev/go-site-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-site-config-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildVersion = buildInfo.BuildVersion()

	fmt.Print(buildInfo)
}
