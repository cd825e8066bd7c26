// Package siteconfig locates, reads and resolves site configuration files.
//
// A site directory holds a configuration file named nanoc.yaml (or the
// legacy config.yaml). The file may name a parent under the
// parent_config_file key; the parent is read, its own parent resolved in
// turn, and the results merged so that keys of the descendant always win.
// Relative parent paths are resolved against the directory of the file that
// declares them.
//
// Usage:
//
//	loader := siteconfig.NewConfigLoader(0, log)
//	site, err := loader.NewFromDir(ctx, dir)
//	if errors.Is(err, siteconfig.ErrCyclicalConfigFile) {
//	    // ...
//	}
//
// Files are parsed with an explicit tag allow-list: plain scalars, dates,
// timestamps, symbols, mappings and sequences. Any other tag fails with
// [ErrDisallowedType].
package siteconfig
