package service

import (
	"fmt"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/internal/siteconfig"
)

type Services struct {
	SiteConfigService SiteConfigService
	AppInfoService    AppInfoService
}

func NewServices(cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	loader := siteconfig.NewConfigLoader(cfg.Site.MaxDepth, logger)

	siteConfigService, err := NewSiteConfigService(loader, cfg.Site, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating site config service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SiteConfigService: NewSiteConfigLoggingService(logger).Wrap(siteConfigService),
		AppInfoService:    appInfoService,
	}, nil
}
