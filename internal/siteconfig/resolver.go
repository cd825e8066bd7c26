package siteconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-site-config/internal/logger"
	"github.com/MKhiriev/go-site-config/models"
)

// ParentConfigKey is the top-level key holding the path of the parent
// configuration file.
const ParentConfigKey = "parent_config_file"

// DefaultMaxDepth is the number of parent levels a [Resolver] follows before
// giving up with [ErrParentChainTooDeep].
const DefaultMaxDepth = 64

// Resolver follows parent references of a configuration and merges every
// ancestor into it, child over parent.
//
// A Resolver holds no per-call state and may be shared.
type Resolver struct {
	reader   FileReader
	maxDepth int

	logger *logger.Logger
}

// NewResolver returns a Resolver reading parent files with reader. A
// maxDepth of zero or less selects [DefaultMaxDepth]. A nil log discards
// output.
func NewResolver(reader FileReader, maxDepth int, log *logger.Logger) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		reader:   reader,
		maxDepth: maxDepth,
		logger:   log,
	}
}

// Resolve merges every ancestor of cfg into it.
//
// processedPaths lists the absolute paths already visited in this walk, the
// file cfg was read from being the last one. A parent reference is resolved
// relative to the directory of that last path, or relative to cfg.Dir() when
// processedPaths is empty.
//
// On success Resolve returns the merged configuration, which never contains
// [ParentConfigKey], together with the full chain of visited paths.
func (r *Resolver) Resolve(ctx context.Context, cfg models.Configuration, processedPaths []string) (models.Configuration, []string, error) {
	if err := ctx.Err(); err != nil {
		return models.Configuration{}, nil, err
	}

	ref, ok := cfg.Get(ParentConfigKey)
	if !ok {
		return cfg, processedPaths, nil
	}
	// An empty reference means no parent.
	if ref == nil {
		return cfg.Without(ParentConfigKey), processedPaths, nil
	}

	parentPath, err := r.parentPath(ref, cfg.Dir(), processedPaths)
	if err != nil {
		return models.Configuration{}, nil, err
	}

	if !isRegularFile(parentPath) {
		return models.Configuration{}, nil, newConfigFileError(parentPath, ErrNoParentConfigFileFound)
	}
	for _, processed := range processedPaths {
		if processed == parentPath {
			return models.Configuration{}, nil, newConfigFileError(parentPath, ErrCyclicalConfigFile)
		}
	}
	if depth := len(processedPaths); depth > r.maxDepth {
		return models.Configuration{}, nil, newConfigFileError(parentPath,
			fmt.Errorf("%w: more than %d parents", ErrParentChainTooDeep, r.maxDepth))
	}

	r.logger.Debug().
		Str("parent", parentPath).
		Int("depth", len(processedPaths)).
		Msg("loading parent configuration")

	parentValues, err := r.reader.ReadFile(parentPath)
	if err != nil {
		return models.Configuration{}, nil, err
	}

	chain := make([]string, len(processedPaths), len(processedPaths)+1)
	copy(chain, processedPaths)
	chain = append(chain, parentPath)

	parent, chain, err := r.Resolve(ctx, models.NewConfiguration(parentValues, cfg.Dir()), chain)
	if err != nil {
		return models.Configuration{}, nil, err
	}

	return parent.Merge(cfg.Without(ParentConfigKey)), chain, nil
}

func (r *Resolver) parentPath(ref any, dir string, processedPaths []string) (string, error) {
	var declaringFile string
	if n := len(processedPaths); n > 0 {
		declaringFile = processedPaths[n-1]
	}

	path, ok := ref.(string)
	if !ok {
		return "", newConfigFileError(declaringFile,
			fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidParentReference, ParentConfigKey, ref))
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	base := dir
	if declaringFile != "" {
		base = filepath.Dir(declaringFile)
	}

	return filepath.Abs(filepath.Join(base, path))
}
