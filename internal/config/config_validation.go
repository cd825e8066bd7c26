// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Supported output modes.
const (
	ModeConfig  = "config"
	ModeChain   = "chain"
	ModeRoot    = "root"
	ModeVersion = "version"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch strings.ToLower(cfg.Output.Format) {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	switch strings.ToLower(cfg.Output.Mode) {
	case ModeConfig, ModeChain, ModeRoot, ModeVersion:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOutputConfigs, cfg.Output.Mode)
	}

	if cfg.Site.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative", ErrInvalidSiteConfigs)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
