package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/service"
	"github.com/MKhiriev/go-site-config/internal/utils"
	"github.com/MKhiriev/go-site-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("siteconf")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(log.WithContext(ctx), services, buildInfo, cfg.Output, os.Stdout); err != nil {
		log.Error().Err(err).Str("dir", cfg.Site.Dir).Msg("error resolving site configuration")
		stop()
		os.Exit(1)
	}
}

// run prints what out.Mode asks for about the configured site.
func run(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo, out config.Output, w io.Writer) error {
	switch strings.ToLower(out.Mode) {
	case config.ModeRoot:
		return utils.WriteOutput(w, services.SiteConfigService.IsSiteRoot(ctx), out.Format)
	case config.ModeVersion:
		info := models.NewAppBuildInfo(services.AppInfoService.GetAppVersion(ctx), buildInfo.BuildDate(), buildInfo.BuildCommit())
		_, err := fmt.Fprint(w, info)
		return err
	}

	site, err := services.SiteConfigService.GetSite(ctx)
	if err != nil {
		return err
	}

	if strings.ToLower(out.Mode) == config.ModeChain {
		return utils.WriteOutput(w, models.ChainResponse{SiteDir: site.Config.Dir(), Chain: site.Chain}, out.Format)
	}

	return utils.WriteOutput(w, site.Config.Values(), out.Format)
}
