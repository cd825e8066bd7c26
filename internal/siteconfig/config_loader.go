package siteconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/models"
)

// ConfigLoader turns a site directory into its fully resolved configuration:
// locate the configuration file, read it, resolve its parents, then run the
// defaults and environment finalizers.
type ConfigLoader struct {
	locator     Locator
	reader      FileReader
	resolver    *Resolver
	defaults    Finalizer
	environment Finalizer

	logger *logger.Logger
}

// Option customizes a [ConfigLoader].
type Option func(*ConfigLoader)

// WithLocator replaces the default [Locator].
func WithLocator(locator Locator) Option {
	return func(l *ConfigLoader) {
		l.locator = locator
	}
}

// WithFileReader replaces the default YAML [FileReader].
func WithFileReader(reader FileReader) Option {
	return func(l *ConfigLoader) {
		l.reader = reader
	}
}

// WithDefaults sets the finalizer filling in default values.
func WithDefaults(f Finalizer) Option {
	return func(l *ConfigLoader) {
		l.defaults = f
	}
}

// WithEnvironment sets the finalizer applying the environment overlay. It
// runs after the defaults finalizer.
func WithEnvironment(f Finalizer) Option {
	return func(l *ConfigLoader) {
		l.environment = f
	}
}

// NewConfigLoader builds a ConfigLoader. maxDepth bounds the parent chain,
// see [NewResolver]. A nil log discards output.
func NewConfigLoader(maxDepth int, log *logger.Logger, opts ...Option) *ConfigLoader {
	if log == nil {
		log = logger.Nop()
	}

	l := &ConfigLoader{
		locator:     NewLocator(),
		reader:      NewFileReader(),
		defaults:    identityFinalizer{},
		environment: identityFinalizer{},
		logger:      log,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.resolver = NewResolver(l.reader, maxDepth, log)

	return l
}

// IsSiteRoot reports whether dir holds a site configuration file.
func (l *ConfigLoader) IsSiteRoot(dir string) bool {
	return IsSiteRoot(l.locator, dir)
}

// NewFromDir resolves the configuration of the site in dir. Either the whole
// chain resolves or an error is returned; partial results are never handed
// out.
func (l *ConfigLoader) NewFromDir(ctx context.Context, dir string) (models.ResolvedSite, error) {
	filename, ok := l.locator.Locate(dir)
	if !ok {
		return models.ResolvedSite{}, fmt.Errorf("%w in %s", ErrNoConfigFileFound, dir)
	}

	l.logger.Debug().Str("config_file", filename).Msg("found site configuration")

	values, err := l.reader.ReadFile(filename)
	if err != nil {
		return models.ResolvedSite{}, err
	}

	cfg, chain, err := l.resolver.Resolve(ctx, models.NewConfiguration(values, filepath.Dir(filename)), []string{filename})
	if err != nil {
		return models.ResolvedSite{}, err
	}

	cfg, err = l.defaults.Apply(ctx, cfg)
	if err != nil {
		return models.ResolvedSite{}, fmt.Errorf("error applying defaults: %w", err)
	}

	cfg, err = l.environment.Apply(ctx, cfg)
	if err != nil {
		return models.ResolvedSite{}, fmt.Errorf("error applying environment: %w", err)
	}

	l.logger.Info().
		Str("config_file", filename).
		Int("parents", len(chain)-1).
		Int("keys", cfg.Values().Len()).
		Msg("site configuration resolved")

	return models.ResolvedSite{
		Config:     cfg,
		ConfigFile: filename,
		Chain:      chain,
	}, nil
}
