package siteconfig

import (
	"context"

	"github.com/MKhiriev/go-site-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/siteconfig_mock.go -package=mock

// Locator finds the configuration file of a site directory.
type Locator interface {
	// Locate returns the absolute path of the first candidate configuration
	// file present in dir, and false if there is none.
	Locate(dir string) (string, bool)
}

// FileReader reads one configuration file into an ordered mapping.
type FileReader interface {
	// ReadFile returns the parsed content of the file at path. Failures are
	// reported as [*ConfigFileError] wrapping [ErrParse] or
	// [ErrDisallowedType].
	ReadFile(path string) (*models.Map, error)
}

// Finalizer transforms a fully resolved configuration. Default-value
// population and environment overlays are plugged in as Finalizers.
type Finalizer interface {
	Apply(ctx context.Context, cfg models.Configuration) (models.Configuration, error)
}

// FinalizerFunc adapts a plain function to [Finalizer].
type FinalizerFunc func(ctx context.Context, cfg models.Configuration) (models.Configuration, error)

// Apply calls f(ctx, cfg).
func (f FinalizerFunc) Apply(ctx context.Context, cfg models.Configuration) (models.Configuration, error) {
	return f(ctx, cfg)
}

type identityFinalizer struct{}

func (identityFinalizer) Apply(_ context.Context, cfg models.Configuration) (models.Configuration, error) {
	return cfg, nil
}
