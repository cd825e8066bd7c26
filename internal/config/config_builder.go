package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Defaults applied to fields that no source sets.
const (
	DefaultOutputFormat          = "yaml"
	DefaultOutputMode            = "config"
	DefaultServerAddress         = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterAddress        = "localhost:8080"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultLogLevel              = "info"
)

type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	defaults, err := defaultConfig()
	if err != nil {
		return nil, fmt.Errorf("error building default configs: %w", err)
	}
	if err := mergo.Merge(config, defaults); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(newFlagSet(), b.args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSON loads the JSON file named by the sources added so far. The file
// has the lowest priority, so it is placed before them.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append([]*StructuredConfig{jsonCfg}, b.configs...)

	return b
}

func defaultConfig() (*StructuredConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Site: Site{
			Dir: wd,
		},
		Output: Output{
			Format: DefaultOutputFormat,
			Mode:   DefaultOutputMode,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}, nil
}
