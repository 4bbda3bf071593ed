package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in precedence order and merges
// them in build. Errors from any step are accumulated and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error

	dotEnvPaths  []string
	dotEnvLoaded bool
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:     make([]*StructuredConfig, 0, 4),
		dotEnvPaths: []string{DefaultDotEnvFile},
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.App.LogLevel == "" {
		config.App.LogLevel = defaultLogLevel(config.App.Env)
	}
	config.DotEnvLoaded = b.dotEnvLoaded

	return config, config.validate()
}

// withDotEnv must run before withEnv so the loaded variables are visible to
// the env parser.
func (b *configBuilder) withDotEnv() *configBuilder {
	loaded, err := loadDotEnv(b.dotEnvPaths...)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.dotEnvLoaded = loaded
	return b
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

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}
