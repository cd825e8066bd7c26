//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/MKhiriev/go-site-config/models"
)

// SiteLoader resolves the configuration of a site directory.
// [siteconfig.ConfigLoader] is the production implementation.
type SiteLoader interface {
	NewFromDir(ctx context.Context, dir string) (models.ResolvedSite, error)
	IsSiteRoot(dir string) bool
}

// SiteConfigService exposes the configuration of the site the application
// was started for.
type SiteConfigService interface {
	// GetSite resolves the site configuration, following every parent file.
	// The result is computed on each call so edits on disk are picked up.
	GetSite(ctx context.Context) (models.ResolvedSite, error)

	// IsSiteRoot reports whether the site directory holds a configuration file.
	IsSiteRoot(ctx context.Context) models.SiteRootResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
