package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial config per source. Sources added first
// take precedence: build merges them in order and mergo only fills fields
// that are still zero.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// fail records err under the source label and keeps the builder chainable.
func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return b.fail("env", err)
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return b.fail("env", err)
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSON loads the file named by the first source that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		return b.fail("json", err)
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}
