package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/models"
)

// SiteConfigServiceWrapper defines middleware composition for SiteConfigService.
// Implementations wrap an existing SiteConfigService to add behavior such as
// logging.
type SiteConfigServiceWrapper interface {
	Wrap(SiteConfigService) SiteConfigService
}

// SiteConfigLoggingService logs every resolution made by the wrapped
// SiteConfigService with the request-scoped logger when one is present.
type SiteConfigLoggingService struct {
	inner  SiteConfigService
	logger *logger.Logger
}

func NewSiteConfigLoggingService(logger *logger.Logger) SiteConfigServiceWrapper {
	return &SiteConfigLoggingService{
		logger: logger,
	}
}

func (s *SiteConfigLoggingService) Wrap(inner SiteConfigService) SiteConfigService {
	s.inner = inner
	return s
}

func (s *SiteConfigLoggingService) GetSite(ctx context.Context) (models.ResolvedSite, error) {
	log := s.loggerFrom(ctx)
	start := time.Now()

	site, err := s.inner.GetSite(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SiteConfigLoggingService.GetSite").
			Dur("duration", time.Since(start)).
			Msg("site configuration resolution failed")
		return site, err
	}

	log.Debug().Str("func", "*SiteConfigLoggingService.GetSite").
		Str("config_file", site.ConfigFile).
		Int("chain_length", len(site.Chain)).
		Dur("duration", time.Since(start)).
		Msg("site configuration resolved")

	return site, nil
}

func (s *SiteConfigLoggingService) IsSiteRoot(ctx context.Context) models.SiteRootResponse {
	resp := s.inner.IsSiteRoot(ctx)

	s.loggerFrom(ctx).Debug().Str("func", "*SiteConfigLoggingService.IsSiteRoot").
		Str("site_dir", resp.SiteDir).
		Bool("is_site_root", resp.IsSiteRoot).
		Msg("site root checked")

	return resp
}

func (s *SiteConfigLoggingService) loggerFrom(ctx context.Context) *logger.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return logger.FromContext(ctx)
	}
	return s.logger
}
