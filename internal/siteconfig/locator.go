package siteconfig

import (
	"os"
	"path/filepath"
)

// Candidate configuration file names, tried in order.
const (
	ConfigFileName       = "nanoc.yaml"
	LegacyConfigFileName = "config.yaml"
)

// DefaultConfigFileNames is the lookup order used by [NewLocator] when no
// names are given.
var DefaultConfigFileNames = []string{ConfigFileName, LegacyConfigFileName}

type fileLocator struct {
	names []string
}

// NewLocator returns a [Locator] trying names in order, or
// [DefaultConfigFileNames] when names is empty.
func NewLocator(names ...string) Locator {
	if len(names) == 0 {
		names = DefaultConfigFileNames
	}

	return &fileLocator{names: append([]string(nil), names...)}
}

func (l *fileLocator) Locate(dir string) (string, bool) {
	for _, name := range l.names {
		candidate := filepath.Join(dir, name)
		if !isRegularFile(candidate) {
			continue
		}

		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		return abs, true
	}

	return "", false
}

// IsSiteRoot reports whether dir holds a site configuration file.
func IsSiteRoot(locator Locator, dir string) bool {
	_, ok := locator.Locate(dir)
	return ok
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
