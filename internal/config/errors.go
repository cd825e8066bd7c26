package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidSiteConfigs indicates invalid site settings
	// (for example, a negative parent depth).
	ErrInvalidSiteConfigs = errors.New("invalid site configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidEnvConfigs indicates an environment variable that cannot be
	// converted to its field type.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
)
