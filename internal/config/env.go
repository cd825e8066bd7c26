// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom fills cfg from vars instead of the process environment.
// Only the `env` and `envPrefix` tags on [StructuredConfig] are honoured;
// untagged fields keep their zero value so that lower-priority sources
// survive the override merge.
func parseEnvFrom(cfg *StructuredConfig, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
