// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-site-config binaries. It aggregates all sub-configurations and is
// populated by merging values from an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the response hash key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Site holds the location of the site to resolve and the resolver
	// limits.
	Site Site `envPrefix:"SITE_"`

	// Output controls how a resolved configuration is printed.
	Output Output `envPrefix:"OUTPUT_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of a running server used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-wide settings.
type App struct {
	// HashKey is the HMAC key used to sign HTTP response bodies
	// (HashSHA256 header). Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Site describes the site whose configuration is resolved.
type Site struct {
	// Dir is the site directory holding nanoc.yaml or config.yaml.
	// Defaults to the process working directory.
	// Env: SITE_DIR
	Dir string `env:"DIR"`

	// MaxDepth bounds the number of parent configuration files followed.
	// Zero selects the resolver default.
	// Env: SITE_MAX_DEPTH
	MaxDepth int `env:"MAX_DEPTH"`
}

// Output controls the rendering of a resolved configuration.
type Output struct {
	// Format is either "yaml" or "json".
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`

	// Mode selects what is printed: the merged configuration ("config"),
	// the list of merged files ("chain"), the site root check ("root") or,
	// for the client, the server version ("version").
	// Env: OUTPUT_MODE
	Mode string `env:"MODE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the client binary.
type Adapter struct {
	// HTTPAddress is the base address of a running server, with or without
	// scheme (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is one of zerolog's level names (debug, info, warn, error ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. Later sources override earlier
// ones for non-zero fields:
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags
//
// Fields left empty by every source receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(commandLineArgs()).
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig is like [GetStructuredConfig] and additionally requires
// the adapter settings used by the client binary.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateClient()
}
