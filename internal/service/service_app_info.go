package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-site-config/internal/config"
	"github.com/MKhiriev/go-site-config/internal/logger"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService serves the version from cfg with surrounding whitespace
// removed. A blank version fails with [ErrVersionIsNotSpecified].
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{
		version: version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
