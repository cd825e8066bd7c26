// Package config provides configuration loading, merging, and validation
// facilities for the go-site-config binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields that remain empty receive package defaults. The main entry points
// are [GetStructuredConfig] for the CLI and server and [GetClientConfig]
// for the HTTP client.
package config
