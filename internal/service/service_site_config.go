package service

import (
	"context"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/models"
)

type siteConfigService struct {
	siteDir string
	loader  SiteLoader

	logger *logger.Logger
}

func NewSiteConfigService(loader SiteLoader, cfg config.Site, logger *logger.Logger) (SiteConfigService, error) {
	if cfg.Dir == "" {
		return nil, ErrSiteDirIsNotSpecified
	}

	return &siteConfigService{
		siteDir: cfg.Dir,
		loader:  loader,
		logger:  logger,
	}, nil
}

func (s *siteConfigService) GetSite(ctx context.Context) (models.ResolvedSite, error) {
	return s.loader.NewFromDir(ctx, s.siteDir)
}

func (s *siteConfigService) IsSiteRoot(ctx context.Context) models.SiteRootResponse {
	return models.SiteRootResponse{
		SiteDir:    s.siteDir,
		IsSiteRoot: s.loader.IsSiteRoot(s.siteDir),
	}
}
