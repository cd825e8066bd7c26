package models

// ResolvedSite is the outcome of resolving a site directory: the fully
// merged configuration and the files that contributed to it.
type ResolvedSite struct {
	// Config is the merged configuration. Its base directory is the site
	// directory.
	Config Configuration

	// ConfigFile is the absolute path of the site's own configuration file.
	ConfigFile string

	// Chain lists every file read during resolution, starting with
	// ConfigFile and followed by its ancestors, nearest first.
	Chain []string
}
